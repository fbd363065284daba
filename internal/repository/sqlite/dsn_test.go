package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitDSN(t *testing.T) {
	tests := []struct {
		path     string
		wantFile string
		wantDSN  string
	}{
		{
			path:     "data/app.db",
			wantFile: "data/app.db",
			wantDSN:  "data/app.db?" + connPragmas,
		},
		{
			path:     "data/app.db?_txlock=immediate",
			wantFile: "data/app.db",
			wantDSN:  "data/app.db?_txlock=immediate&" + connPragmas,
		},
		{
			path:     "file:data/app.db?cache=shared",
			wantFile: "data/app.db",
			wantDSN:  "file:data/app.db?cache=shared&" + connPragmas,
		},
		{
			path:     "file:app.db",
			wantFile: "app.db",
			wantDSN:  "file:app.db?" + connPragmas,
		},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			file, dsn := splitDSN(tt.path)
			assert.Equal(t, tt.wantFile, file)
			assert.Equal(t, tt.wantDSN, dsn)
		})
	}
}
