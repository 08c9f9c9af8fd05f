package ui_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"switch-openvpn/internal/ui"
)

func TestPrinterCurrentConnection(t *testing.T) {
	testCases := []struct {
		desc    string
		profile string
		want    string
	}{
		{desc: "active", profile: "acme-vpn", want: "Current VPN provider: acme-vpn\n"},
		{desc: "none", profile: "", want: "Current VPN provider: None\n"},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			var out bytes.Buffer

			ui.NewPrinter(&out).CurrentConnection(tC.profile)

			assert.Equal(t, tC.want, out.String())
		})
	}
}

func TestPrinterSwitchResult(t *testing.T) {
	var out bytes.Buffer
	p := ui.NewPrinter(&out)

	p.Switched("beta")
	p.SwitchFailed("gamma", errors.New("failed to start openvpn@gamma"))

	assert.Equal(t,
		"Successfully switched to beta\nError switching to gamma\nfailed to start openvpn@gamma\n",
		out.String(),
	)
}

func TestPrinterStatusErrorKeepsDetailUnpadded(t *testing.T) {
	var out bytes.Buffer

	ui.NewPrinter(&out).StatusError(errors.New(
		"error checking VPN status: systemctl list-units --type=service failed: exit status 1\nOutput: bus",
	))

	assert.Equal(t,
		"error checking VPN status: systemctl list-units --type=service failed: exit status 1\nOutput: bus\n",
		out.String(),
	)
}

func TestPrinterWouldSwitch(t *testing.T) {
	var out bytes.Buffer

	ui.NewPrinter(&out).WouldSwitch("beta")

	assert.Equal(t, "Dry run: would switch to beta\n", out.String())
}

func TestPrinterProfiles(t *testing.T) {
	var out bytes.Buffer

	ui.NewPrinter(&out).Profiles([]string{"alpha", "beta"}, "beta")

	assert.Equal(t, "  alpha\n* beta\n", out.String())
}
