package vpn

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/sirupsen/logrus"
)

// OpenVPNService detects, lists and switches OpenVPN profiles run as
// systemd template units.
type OpenVPNService struct {
	runner     Runner
	profiles   fs.FS
	unitPrefix string
	log        logrus.FieldLogger
}

func NewService(runner Runner, profiles fs.FS, unitPrefix string, log logrus.FieldLogger) *OpenVPNService {
	return &OpenVPNService{
		runner:     runner,
		profiles:   profiles,
		unitPrefix: unitPrefix,
		log:        log,
	}
}

// GetStatus reports the active connection. When the service listing fails the
// returned status is disconnected and the error is returned alongside it, so
// callers can report it and carry on.
func (s *OpenVPNService) GetStatus(ctx context.Context) (*ConnectionStatus, error) {
	output, err := s.runner.ListServices(ctx)
	if err != nil {
		return &ConnectionStatus{Connected: false}, fmt.Errorf("error checking VPN status: %w", err)
	}

	profile, ok := ParseActiveConnection(output)
	if !ok {
		s.log.Debug("no running OpenVPN unit found")
		return &ConnectionStatus{Connected: false}, nil
	}

	return &ConnectionStatus{
		Connected: true,
		Profile:   profile,
		Unit:      UnitName(s.unitPrefix, profile),
	}, nil
}

func (s *OpenVPNService) Profiles() ([]string, error) {
	return ListProfiles(s.profiles)
}

// Switch stops previous, if any, then starts next. A failed stop aborts
// before next is started. Nothing is rolled back.
func (s *OpenVPNService) Switch(ctx context.Context, previous, next string) error {
	if previous != "" {
		unit := UnitName(s.unitPrefix, previous)
		s.log.Debugf("stopping %s", unit)
		if err := s.runner.Stop(ctx, unit); err != nil {
			return fmt.Errorf("failed to stop %s: %w", unit, err)
		}
	}

	unit := UnitName(s.unitPrefix, next)
	s.log.Debugf("starting %s", unit)
	if err := s.runner.Start(ctx, unit); err != nil {
		return fmt.Errorf("failed to start %s: %w", unit, err)
	}
	return nil
}
