package core

// ProcessorConfig carries the settings shared by the signal generation and
// response measurement helpers. The filter engines themselves are sample
// rate agnostic; the rate only matters when interpreting coefficients in
// terms of physical frequency.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns sensible defaults for offline and streaming use.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 48000,
		BlockSize:  1024,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the block size used by block-wise measurement loops.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := ApplyProcessorOptionsTo(DefaultProcessorConfig(), opts...)
	return cfg
}

// ApplyProcessorOptionsTo applies zero or more options to an existing config.
func ApplyProcessorOptionsTo(cfg ProcessorConfig, opts ...ProcessorOption) ProcessorConfig {
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
