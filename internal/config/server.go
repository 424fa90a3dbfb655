package config

type ServerConfig struct {
	Address        string `yaml:"addr"`
	MetricsAddress string `yaml:"metrics-addr"`
	StorageBackend string `yaml:"backend"`
}

func (s *ServerConfig) Addr() string {
	return s.Address
}

func (s *ServerConfig) MetricsAddr() string {
	return s.MetricsAddress
}

func (s *ServerConfig) Backend() string {
	return s.StorageBackend
}
