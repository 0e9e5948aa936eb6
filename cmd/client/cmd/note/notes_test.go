package note

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelmate/internal/domain/note"
)

func TestInputFlags_Apply(t *testing.T) {
	current := note.Input{
		Title:      "Bromo",
		Location:   "Gunung Bromo",
		Coordinate: "-7.94,112.95",
	}

	tests := []struct {
		name string
		args []string
		want note.Input
	}{
		{
			name: "no flags keeps values",
			want: current,
		},
		{
			name: "title only",
			args: []string{"--title", "Ijen"},
			want: note.Input{Title: "Ijen", Location: "Gunung Bromo", Coordinate: "-7.94,112.95"},
		},
		{
			name: "new coordinate drops resolved location",
			args: []string{"-c", "-8.06,114.24"},
			want: note.Input{Title: "Bromo", Coordinate: "-8.06,114.24"},
		},
		{
			name: "explicit empty description",
			args: []string{"--description", ""},
			want: current,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f inputFlags
			cmd := &cobra.Command{Use: "edit"}
			f.bind(cmd)
			require.NoError(t, cmd.ParseFlags(tt.args))

			assert.Equal(t, tt.want, f.apply(cmd, current))
		})
	}
}
