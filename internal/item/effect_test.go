package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEffect(t *testing.T) {
	tests := []struct {
		name    string
		def     EffectDef
		want    EffectKind
		wantErr string
	}{
		{"none", EffectDef{Type: "none"}, EffectNone, ""},
		{"reset", EffectDef{Type: "reset_cooldowns", Actions: []string{"fish"}}, EffectResetCooldowns, ""},
		{"reset without actions", EffectDef{Type: "reset_cooldowns"}, 0, ErrMsgEffectNoActions},
		{"jelly", EffectDef{Type: "grant_jelly", Amount: 10}, EffectGrantJelly, ""},
		{"jelly without amount", EffectDef{Type: "grant_jelly"}, 0, ErrMsgEffectNoAmount},
		{"affinity", EffectDef{Type: "affinity", Amount: 3}, EffectAffinity, ""},
		{"random without children", EffectDef{Type: "random"}, 0, ErrMsgEffectNoChildren},
		{"unknown", EffectDef{Type: "teleport"}, 0, ErrMsgUnknownEffect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eff, err := ParseEffect(tt.def)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, eff.Kind)
		})
	}
}

func TestParseEffect_DepthLimit(t *testing.T) {
	def := EffectDef{Type: "none"}
	for i := 0; i <= maxEffectDepth+1; i++ {
		def = EffectDef{Type: "combo", Children: []EffectDef{def}}
	}
	_, err := ParseEffect(def)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgEffectTooDeep)
}

func TestEffectKind_String(t *testing.T) {
	assert.Equal(t, "grant_jelly", EffectGrantJelly.String())
	assert.Equal(t, "unknown", EffectKind(99).String())
}
