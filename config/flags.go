// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/ava-labs/nftext/database/leveldb"
	"github.com/ava-labs/nftext/database/memdb"
	"github.com/ava-labs/nftext/utils/constants"
	"github.com/ava-labs/nftext/vms/chainext"
	"github.com/ava-labs/nftext/vms/uniques"
)

var (
	defaultDataDir = filepath.Join("$HOME", "."+constants.AppName)
	defaultDBDir   = filepath.Join(defaultDataDir, "db")
)

func addNodeFlags(fs *pflag.FlagSet) {
	fs.Bool(VersionKey, false, "If true, print version and quit")
	fs.String(ConfigFileKey, "", fmt.Sprintf("Specifies a config file. Ignored if %s is unset", ConfigFileKey))

	// Logging
	fs.String(LogLevelKey, "info", "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayHighlightKey, "auto", "Whether to color/highlight display logs. Default highlights when the output is a terminal. Otherwise, should be one of {auto, plain, colors}")
	fs.String(LogFormatKey, "console", "The structure of log format. Should be one of {console, json}")
	fs.String(LogsDirKey, "", "Logging directory. If empty, logs are only written to stdout")
	fs.Uint(LogRotaterMaxSizeKey, 8, "The maximum file size in megabytes of a log file before it gets rotated")
	fs.Uint(LogRotaterMaxFilesKey, 7, "The maximum number of old log files to retain. 0 means retain all old log files")
	fs.Uint(LogRotaterMaxAgeKey, 0, "The maximum number of days to retain old log files based on the timestamp encoded in their filename. 0 means retain all old log files")
	fs.Bool(LogRotaterCompressKey, false, "Enables the compression of rotated log files through gzip")

	// Database
	fs.String(DBTypeKey, leveldb.Name, fmt.Sprintf("Database type to use. Should be one of {%s, %s}", leveldb.Name, memdb.Name))
	fs.String(DBPathKey, defaultDBDir, "Path to database directory")

	// HTTP APIs
	fs.String(HTTPHostKey, "127.0.0.1", "Address of the HTTP server")
	fs.Uint(HTTPPortKey, 9650, "Port of the HTTP server")
	fs.StringSlice(HTTPAllowedOriginsKey, []string{"*"}, "Origins to allow on the HTTP port. Defaults to * which allows all origins")

	// Metering
	fs.Uint64(GasLimitKey, constants.DefaultGasLimit, "Weight budget of a single API call")
	fs.Uint64(TransferOverheadKey, uint64(chainext.DefaultSchedule.Overhead), "Weight charged for crossing from a contract into the runtime")
	fs.Uint64(WeightsCreateCollectionKey, uint64(uniques.DefaultWeights.CreateCollectionCost), "Weight of creating a collection")
	fs.Uint64(WeightsMintKey, uint64(uniques.DefaultWeights.MintCost), "Weight of minting an item")
	fs.Uint64(WeightsBurnKey, uint64(uniques.DefaultWeights.BurnCost), "Weight of burning an item")
	fs.Uint64(WeightsTransferKey, uint64(uniques.DefaultWeights.TransferCost), "Weight of transferring an item")
	fs.Uint64(WeightsFreezeKey, uint64(uniques.DefaultWeights.FreezeCost), "Weight of freezing or thawing an item")
	fs.Uint64(WeightsApproveTransferKey, uint64(uniques.DefaultWeights.ApproveTransferCost), "Weight of approving or cancelling a transfer delegate")

	// Genesis
	fs.String(GenesisCollectionsKey, "", "JSON list of collections, each {\"id\", \"owner\", \"items\"}, created on first start")

	// Tracing
	fs.String(TracingExporterTypeKey, "", "Type of exporter to use for tracing. Options are [, grpc, http]. An empty value disables tracing")
	fs.String(TracingEndpointKey, "localhost:4317", "The endpoint to send trace data to")
	fs.Bool(TracingInsecureKey, true, "If true, don't use TLS when sending trace data")
	fs.Float64(TracingSampleRateKey, 0.1, "The fraction of traces to sample. If >= 1, always sample. If <= 0, never sample")
	fs.StringToString(TracingHeadersKey, map[string]string{}, "The headers to provide the trace indexer")
}

// BuildFlagSet returns a complete set of flags for the node
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(constants.AppName, pflag.ContinueOnError)
	addNodeFlags(fs)
	return fs
}

func getExpandedString(value string) string {
	return os.ExpandEnv(value)
}
