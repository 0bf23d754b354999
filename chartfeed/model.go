package chartfeed

type Sample struct {
	T float64 `yaml:"t"`
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Storage interface {
	Keys() (keys []string, err error)
	Load(key string) (samples []Sample, err error)
	Save(key string, samples []Sample) error
}
