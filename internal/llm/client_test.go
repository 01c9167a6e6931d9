package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/netcoach-ai/netcoach/internal/config"
	"github.com/netcoach-ai/netcoach/internal/domain"
	"github.com/netcoach-ai/netcoach/internal/tools"
)

func testClient(moderationKey string) *Client {
	cfg := &config.Config{
		LLM: config.LLMConfig{
			Model:      "gpt-4.1-mini",
			TitleModel: "gpt-4o-mini",
		},
		Moderation: config.ModerationConfig{
			APIKey: moderationKey,
			Model:  "omni-moderation-latest",
		},
	}
	reg := tools.DefaultRegistry(2*time.Second, 2*time.Second, 3*time.Second)
	return New(cfg, reg, zap.NewNop())
}

func TestModerate_NoKeyFailsOpen(t *testing.T) {
	t.Parallel()

	c := testClient("")
	got := c.Moderate(context.Background(), "anything at all")
	assert.Equal(t, domain.ModerationIndeterminate, got)
}

func TestToolParams(t *testing.T) {
	t.Parallel()

	c := testClient("")
	params := c.toolParams()
	assert.Len(t, params, 3)

	names := make([]string, 0, len(params))
	for _, p := range params {
		names = append(names, p.Function.Name)
		assert.Equal(t, "object", p.Function.Parameters["type"])
		assert.NotEmpty(t, p.Function.Parameters["properties"])
	}
	assert.Equal(t, []string{"dns_lookup", "http_probe", "tcp_check"}, names)
}

func TestRunTool_UnknownTool(t *testing.T) {
	t.Parallel()

	c := testClient("")
	out := c.runTool(context.Background(), "no_such_tool", `{}`)
	assert.Contains(t, out, "unknown tool")
}

func TestRunTool_InvalidArgsReportedToModel(t *testing.T) {
	t.Parallel()

	// A tool failure becomes a result string the model can read, not
	// a turn-level failure.
	c := testClient("")
	out := c.runTool(context.Background(), "tcp_check", `{"host":"","port":80}`)
	assert.Contains(t, out, "error:")
}

func TestTrimTitle(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{`"Fix DNS Timeouts"`, "Fix DNS Timeouts"},
		{"  Firewall Rules Help \n", "Firewall Rules Help"},
		{`" Quoted And Padded "`, "Quoted And Padded"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, trimTitle(tc.in))
	}
}
