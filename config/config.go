// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/ava-labs/nftext/database/factory"
	"github.com/ava-labs/nftext/trace"
	"github.com/ava-labs/nftext/utils/logging"
	"github.com/ava-labs/nftext/vms/chainext"
	"github.com/ava-labs/nftext/vms/components/gas"
	"github.com/ava-labs/nftext/vms/uniques"
)

var (
	errZeroGasLimit        = errors.New("gas limit must be positive")
	errInvalidHTTPPort     = errors.New("http port must fit in 16 bits")
	errInvalidSampleRate   = errors.New("tracing sample rate must be in [0, 1]")
	errDuplicateCollection = errors.New("duplicate genesis collection")
)

// Config is the configuration of a node.
type Config struct {
	LoggingConfig  logging.Config         `json:"loggingConfig"`
	DatabaseConfig factory.DatabaseConfig `json:"databaseConfig"`

	HTTPHost           string   `json:"httpHost"`
	HTTPPort           uint16   `json:"httpPort"`
	HTTPAllowedOrigins []string `json:"httpAllowedOrigins"`

	GasLimit gas.Gas           `json:"gasLimit"`
	Schedule chainext.Schedule `json:"schedule"`
	Weights  uniques.Weights   `json:"weights"`

	GenesisCollections []uniques.GenesisCollection `json:"genesisCollections"`

	TraceConfig trace.Config `json:"traceConfig"`
}

// GetConfig returns the node config described by [v].
func GetConfig(v *viper.Viper) (Config, error) {
	loggingConfig, err := getLoggingConfig(v)
	if err != nil {
		return Config{}, err
	}

	port := v.GetUint(HTTPPortKey)
	if port > 0xffff {
		return Config{}, fmt.Errorf("%w: %d", errInvalidHTTPPort, port)
	}

	gasLimit := gas.Gas(v.GetUint64(GasLimitKey))
	if gasLimit == 0 {
		return Config{}, errZeroGasLimit
	}

	genesis, err := getGenesisCollections(v)
	if err != nil {
		return Config{}, err
	}

	traceConfig, err := getTraceConfig(v)
	if err != nil {
		return Config{}, err
	}

	return Config{
		LoggingConfig: loggingConfig,
		DatabaseConfig: factory.DatabaseConfig{
			Name: v.GetString(DBTypeKey),
			Path: getExpandedString(v.GetString(DBPathKey)),
		},
		HTTPHost:           v.GetString(HTTPHostKey),
		HTTPPort:           uint16(port),
		HTTPAllowedOrigins: v.GetStringSlice(HTTPAllowedOriginsKey),
		GasLimit:           gasLimit,
		Schedule: chainext.Schedule{
			Overhead: gas.Gas(v.GetUint64(TransferOverheadKey)),
		},
		Weights: uniques.Weights{
			CreateCollectionCost: gas.Gas(v.GetUint64(WeightsCreateCollectionKey)),
			MintCost:             gas.Gas(v.GetUint64(WeightsMintKey)),
			BurnCost:             gas.Gas(v.GetUint64(WeightsBurnKey)),
			TransferCost:         gas.Gas(v.GetUint64(WeightsTransferKey)),
			FreezeCost:           gas.Gas(v.GetUint64(WeightsFreezeKey)),
			ApproveTransferCost:  gas.Gas(v.GetUint64(WeightsApproveTransferKey)),
		},
		GenesisCollections: genesis,
		TraceConfig:        traceConfig,
	}, nil
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	loggingConfig := logging.DefaultConfig()

	var err error
	loggingConfig.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return logging.Config{}, err
	}
	loggingConfig.DisplayHighlight, err = logging.ToHighlight(v.GetString(LogDisplayHighlightKey), os.Stdout.Fd())
	if err != nil {
		return logging.Config{}, err
	}
	loggingConfig.Format = v.GetString(LogFormatKey)
	loggingConfig.RotatingWriterConfig = logging.RotatingWriterConfig{
		Directory: getExpandedString(v.GetString(LogsDirKey)),
		MaxSize:   int(v.GetUint(LogRotaterMaxSizeKey)),
		MaxFiles:  int(v.GetUint(LogRotaterMaxFilesKey)),
		MaxAge:    int(v.GetUint(LogRotaterMaxAgeKey)),
		Compress:  v.GetBool(LogRotaterCompressKey),
	}
	if _, err := loggingConfig.Encoder(); err != nil {
		return logging.Config{}, err
	}
	return loggingConfig, nil
}

// getGenesisCollections accepts the collections either as a JSON string, as
// passed by flag or environment, or as structured config file content.
func getGenesisCollections(v *viper.Viper) ([]uniques.GenesisCollection, error) {
	var raw []byte
	switch value := v.Get(GenesisCollectionsKey).(type) {
	case nil:
		return nil, nil
	case string:
		if value == "" {
			return nil, nil
		}
		raw = []byte(value)
	default:
		var err error
		raw, err = json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("couldn't read %s: %w", GenesisCollectionsKey, err)
		}
	}

	var genesis []uniques.GenesisCollection
	if err := json.Unmarshal(raw, &genesis); err != nil {
		return nil, fmt.Errorf("couldn't parse %s: %w", GenesisCollectionsKey, err)
	}

	seen := make(map[uniques.CollectionID]struct{}, len(genesis))
	for _, g := range genesis {
		if _, ok := seen[g.ID]; ok {
			return nil, fmt.Errorf("%w: %d", errDuplicateCollection, g.ID)
		}
		seen[g.ID] = struct{}{}
	}
	return genesis, nil
}

func getTraceConfig(v *viper.Viper) (trace.Config, error) {
	exporterType, err := trace.ExporterTypeFromString(v.GetString(TracingExporterTypeKey))
	if err != nil {
		return trace.Config{}, err
	}
	if exporterType == trace.NoOp {
		return trace.Config{}, nil
	}

	sampleRate := v.GetFloat64(TracingSampleRateKey)
	if sampleRate < 0 || sampleRate > 1 {
		return trace.Config{}, fmt.Errorf("%w: %f", errInvalidSampleRate, sampleRate)
	}
	return trace.Config{
		ExporterConfig: trace.ExporterConfig{
			Type:     exporterType,
			Endpoint: v.GetString(TracingEndpointKey),
			Headers:  v.GetStringMapString(TracingHeadersKey),
			Insecure: v.GetBool(TracingInsecureKey),
		},
		TraceSampleRate: sampleRate,
	}, nil
}
