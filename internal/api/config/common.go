package config

// Config is the configuration root.
type Config struct {
	Server   ServerConfig  `mapstructure:"server"`
	DB       DBConfig      `mapstructure:"database"`
	Redis    RedisConfig   `mapstructure:"redis"`
	Mongo    MongoConfig   `mapstructure:"mongo"`
	Elastic  ElasticConfig `mapstructure:"elastic"`
	JWT      JWTConfig     `mapstructure:"jwt"`
	OAuth    OAuthConfig   `mapstructure:"oauth"`
	Logstash LogConfig     `mapstructure:"logstash"`
}

// ServerConfig HTTP server settings.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig MySQL settings.
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MongoConfig alert notification store.
type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// ElasticConfig suggestion search index. Deployments with Enabled=false fall
// back to SQL LIKE search.
type ElasticConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Address  string `mapstructure:"address"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Index    string `mapstructure:"suggestion_index"`
}

// JWTConfig token signing settings.
type JWTConfig struct {
	Secret         string `mapstructure:"secret"`
	AccessExpireH  int    `mapstructure:"access_expire_hours"`
	RefreshExpireH int    `mapstructure:"refresh_expire_hours"`
}

// OAuthConfig social login providers.
type OAuthConfig struct {
	Google OAuthProviderConfig `mapstructure:"google"`
	Kakao  OAuthProviderConfig `mapstructure:"kakao"`
	Naver  OAuthProviderConfig `mapstructure:"naver"`
}

type OAuthProviderConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURL  string `mapstructure:"redirect_url"`
	TokenURL     string `mapstructure:"token_url"`
	UserInfoURL  string `mapstructure:"user_info_url"`
}

// LogConfig optional remote log shipping.
type LogConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}
