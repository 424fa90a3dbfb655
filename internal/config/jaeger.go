package config

type JaegerConfig struct {
	Service   string `yaml:"service-name"`
	Agent     string `yaml:"agent-addr"`
	TracingOn bool   `yaml:"enabled"`
}

func (j *JaegerConfig) ServiceName() string {
	return j.Service
}

func (j *JaegerConfig) AgentAddr() string {
	return j.Agent
}

func (j *JaegerConfig) Enabled() bool {
	return j.TracingOn
}
