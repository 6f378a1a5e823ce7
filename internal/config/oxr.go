package config

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type OXRConfig struct {
	ApiKeyFile     string `yaml:"api-key-file"`
	Url            string `yaml:"base-url" validate:"required,url"`
	TimeoutSeconds int    `yaml:"timeout-seconds" validate:"gte=0"`

	apiKey string
}

// loadKey prefers OXR_API_KEY over the key file. A missing key is not an
// error here, the API reports it as a missing credential.
func (o *OXRConfig) loadKey() error {
	if key := strings.TrimSpace(os.Getenv(apiKeyEnv)); key != "" {
		o.apiKey = key
		return nil
	}
	if o.ApiKeyFile == "" {
		return nil
	}

	raw, err := os.ReadFile(o.ApiKeyFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "reading api key file")
	}
	o.apiKey = strings.TrimSpace(string(raw))
	return nil
}

func (o *OXRConfig) ApiKey() string {
	return o.apiKey
}

func (o *OXRConfig) BaseURL() string {
	return o.Url
}

func (o *OXRConfig) Timeout() time.Duration {
	return time.Duration(o.TimeoutSeconds) * time.Second
}
