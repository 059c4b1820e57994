package v1

// Option configures a Codec.
type Option func(*codecConfig)

type codecConfig struct {
	config     *Config
	configPath string
	typecode   *Typecode
	preview    *int
	precision  *int
}

// WithConfig uses cfg as the base settings.
func WithConfig(cfg *Config) Option {
	return func(c *codecConfig) {
		c.config = cfg
	}
}

// WithConfigFile loads the base settings from a YAML file.
func WithConfigFile(path string) Option {
	return func(c *codecConfig) {
		c.configPath = path
	}
}

// WithTypecode sets the typecode used by Encode.
func WithTypecode(tc Typecode) Option {
	return func(c *codecConfig) {
		c.typecode = &tc
	}
}

// WithPreview sets how many components Repr shows.
func WithPreview(n int) Option {
	return func(c *codecConfig) {
		c.preview = &n
	}
}

// WithPrecision sets the number of decimals Display prints; -1 prints the
// shortest exact form.
func WithPrecision(p int) Option {
	return func(c *codecConfig) {
		c.precision = &p
	}
}
