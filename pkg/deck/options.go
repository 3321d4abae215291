package deck

// Logger receives debug traces of deck mutations
type Logger interface {
	Debug(format string, v ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}

// Options represents deck configuration options
type Options struct {
	Rand   Source
	Logger Logger
}

// NewOptions creates a new Options with default values
func NewOptions() *Options {
	return &Options{
		Rand:   NewRandomSource(),
		Logger: nopLogger{},
	}
}

// withDefaults returns a copy of o with any unset field filled in
func (o *Options) withDefaults() *Options {
	if o == nil {
		return NewOptions()
	}
	opts := *o
	if opts.Rand == nil {
		opts.Rand = NewRandomSource()
	}
	if opts.Logger == nil {
		opts.Logger = nopLogger{}
	}
	return &opts
}
