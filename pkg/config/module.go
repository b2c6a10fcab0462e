package config

import (
	"github.com/arthur-debert/promptline/pkg/errors"
	"github.com/arthur-debert/promptline/pkg/logging"
	"github.com/arthur-debert/promptline/pkg/types"
	"github.com/go-viper/mapstructure/v2"
)

// DecodeModule decodes a raw module section into target, which must point
// at a struct already holding the module's defaults. Keys absent from raw
// keep their default. With strict set, unknown keys are an error.
func DecodeModule(raw map[string]interface{}, target interface{}, strict bool) error {
	if len(raw) == 0 {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "koanf",
		WeaklyTypedInput: true,
		ErrorUnused:      strict,
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to build module decoder")
	}

	if err := decoder.Decode(raw); err != nil {
		return errors.Wrap(err, errors.ErrConfigInvalid, "invalid module configuration")
	}
	return nil
}

// LoadModule returns the module's configuration for this render: its
// section from ctx decoded over defaults. An invalid section is logged and
// the defaults are used, so one bad section never stops the prompt.
func LoadModule[T any](ctx types.Context, name string, defaults T) T {
	cfg := defaults
	if err := DecodeModule(ctx.ModuleConfig(name), &cfg, ctx.StrictConfig()); err != nil {
		logger := logging.ModuleLogger(name)
		logger.Warn().Err(err).Msg("Invalid module configuration, using defaults")
		return defaults
	}
	return cfg
}
