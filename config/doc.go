// Package config loads openaikit settings from a YAML file, a .env file
// and the process environment.
//
// Environment variables win over .env entries, which win over the YAML
// file. Variable names map onto nested keys by splitting on underscores,
// so OPENAI_API_KEY fills openai.api_key and LOGGER_LEVEL fills
// logger.level. Unknown keys are ignored.
//
// # Usage
//
//	cfg, err := config.Load(config.WithConfigFile("./openai.yml"))
//	if err != nil {
//	    return err
//	}
//	api := openai.New(openai.NewConfiguration(cfg.OpenAI))
package config
