package service

import (
	"context"
)

type appInfoService struct {
	appVersion string
}

// NewAppInfoService returns an [AppInfoService] serving the fixed version
// string resolved at startup.
func NewAppInfoService(version string) AppInfoService {
	return &appInfoService{appVersion: version}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
