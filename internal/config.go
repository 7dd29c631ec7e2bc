package internal

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/tuannm99/tableless/internal/model"
)

type TablelessConfig struct {
	Model   string         `mapstructure:"model"`
	Mode    string         `mapstructure:"mode"`
	Columns []ColumnConfig `mapstructure:"columns"`
}

type ColumnConfig struct {
	Name     string `mapstructure:"name"`
	Type     string `mapstructure:"type"`
	Default  any    `mapstructure:"default"`
	Nullable *bool  `mapstructure:"nullable"` // nil means nullable
}

func LoadConfig(path string) (*TablelessConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg TablelessConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Definition materializes the configured tableless model. An omitted
// mode keeps the fail_fast default.
func (c *TablelessConfig) Definition() (*model.Definition, error) {
	var opts []model.Option
	if c.Mode != "" {
		mode, err := model.ParseMode(c.Mode)
		if err != nil {
			return nil, fmt.Errorf("definition %q: %w", c.Model, err)
		}
		opts = append(opts, model.WithMode(mode))
	}

	d := model.NewDefinition(c.Model, opts...)
	for _, col := range c.Columns {
		var colOpts []model.ColumnOption
		if col.Default != nil {
			colOpts = append(colOpts, model.WithDefault(col.Default))
		}
		if col.Nullable != nil && !*col.Nullable {
			colOpts = append(colOpts, model.NotNull())
		}
		d.AddColumn(col.Name, col.Type, colOpts...)
	}
	return d, nil
}
