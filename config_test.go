package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{port: 8080}, false},
		{"tls pair", Config{port: 8080, tlsCert: "a.pem", tlsKey: "a.key"}, false},
		{"cert without key", Config{port: 8080, tlsCert: "a.pem"}, true},
		{"key without cert", Config{port: 8080, tlsKey: "a.key"}, true},
		{"port too low", Config{port: 0}, true},
		{"port too high", Config{port: 65536}, true},
		{"negative move timeout", Config{port: 8080, moveTimeout: -time.Second}, true},
		{"negative room timeout", Config{port: 8080, roomTimeout: -time.Second}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigScheme(t *testing.T) {
	cfg := Config{}
	assert.Equal(t, "http", cfg.scheme())

	cfg.tlsCert = "a.pem"
	cfg.tlsKey = "a.key"
	assert.Equal(t, "https", cfg.scheme())
}
