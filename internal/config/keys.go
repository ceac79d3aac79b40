package config

import "errors"

// Key identifies one entry of the configuration file.
type Key string

const (
	OpenAIAPIKey     Key = "OPENAI_API_KEY"
	GoogleAPIKey     Key = "GOOGLE_API_KEY"
	HuggingFaceToken Key = "HUGGINGFACEHUB_API_TOKEN"
	ModelRepos       Key = "HF_MODEL_REPO"
)

var ErrUnknownKey = errors.New("unknown config key")

// Keys returns the recognised keys in the order they are shown and appended.
func Keys() []Key {
	return []Key{OpenAIAPIKey, GoogleAPIKey, HuggingFaceToken, ModelRepos}
}

func (k Key) Valid() bool {
	for _, known := range Keys() {
		if k == known {
			return true
		}
	}
	return false
}

// Values maps configuration keys to their stored strings. An unset key maps to "".
type Values map[Key]string

func emptyValues() Values {
	values := make(Values, len(Keys()))
	for _, k := range Keys() {
		values[k] = ""
	}
	return values
}
