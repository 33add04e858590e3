// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey              = "config-file"
	VersionKey                 = "version"
	LogLevelKey                = "log-level"
	LogDisplayHighlightKey     = "log-display-highlight"
	LogFormatKey               = "log-format"
	LogsDirKey                 = "log-dir"
	LogRotaterMaxSizeKey       = "log-rotater-max-size"
	LogRotaterMaxFilesKey      = "log-rotater-max-files"
	LogRotaterMaxAgeKey        = "log-rotater-max-age"
	LogRotaterCompressKey      = "log-rotater-compress-enabled"
	DBTypeKey                  = "db-type"
	DBPathKey                  = "db-dir"
	HTTPHostKey                = "http-host"
	HTTPPortKey                = "http-port"
	HTTPAllowedOriginsKey      = "http-allowed-origins"
	GasLimitKey                = "gas-limit"
	TransferOverheadKey        = "transfer-overhead"
	WeightsCreateCollectionKey = "weights.create-collection"
	WeightsMintKey             = "weights.mint"
	WeightsBurnKey             = "weights.burn"
	WeightsTransferKey         = "weights.transfer"
	WeightsFreezeKey           = "weights.freeze"
	WeightsApproveTransferKey  = "weights.approve-transfer"
	GenesisCollectionsKey      = "genesis-collections"
	TracingExporterTypeKey     = "tracing-exporter-type"
	TracingEndpointKey         = "tracing-endpoint"
	TracingInsecureKey         = "tracing-insecure"
	TracingSampleRateKey       = "tracing-sample-rate"
	TracingHeadersKey          = "tracing-headers"
)
