package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xkcdterm/internal/config"
	"xkcdterm/internal/nav"
)

func TestCliArgs_start(t *testing.T) {
	tests := []struct {
		name    string
		args    cliArgs
		want    nav.Request
		wantErr bool
	}{
		{name: "latest", args: cliArgs{}, want: nav.Request{}},
		{name: "id", args: cliArgs{id: 614}, want: nav.Request{Kind: nav.Jump, ID: 614}},
		{name: "random", args: cliArgs{random: true}, want: nav.Request{Kind: nav.Random}},
		{name: "both", args: cliArgs{id: 1, random: true}, wantErr: true},
		{name: "negative", args: cliArgs{id: -3}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.args.start()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCliArgs_apply(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cliArgs{threshold: -1}.apply(cfg))
	assert.Equal(t, 128, cfg.Threshold)
	assert.Equal(t, "info", cfg.LogLevel)

	require.NoError(t, cliArgs{threshold: 90, debug: true, log: "/tmp/x.log"}.apply(cfg))
	assert.Equal(t, 90, cfg.Threshold)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/x.log", cfg.LogFile)

	assert.Error(t, cliArgs{threshold: 300}.apply(config.Default()))
}
