package internal

type Config struct {
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
	ThemeFilepath  string `env:"THEME_FILEPATH"`
	CatalogDir     string `env:"CATALOG_DIR"`
	Locale         string `env:"LOCALE,default=en-US"`
	BadgerFilepath string `env:"BADGER_FILEPATH,default=./data/users"`
	HomeserverURL  string `env:"HOMESERVER_URL,default=https://matrix.org"`
}
