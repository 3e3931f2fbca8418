// Package account exposes provider account identity and credit balance.
package account

import (
	"context"

	"github.com/mleroux/videogen-ms-go/internal/model"
	"github.com/mleroux/videogen-ms-go/internal/port"
)

type accountSrv struct {
	gw port.Gateway
}

// compile-time check: *accountSrv must satisfy port.AccountInfo
var _ port.AccountInfo = (*accountSrv)(nil)

// NewAccountInfo constructs an AccountInfo implementation.
func NewAccountInfo(gw port.Gateway) port.AccountInfo {
	return &accountSrv{gw}
}

func (s *accountSrv) GetUserInfo(ctx context.Context) (*model.UserInfo, error) {
	return s.gw.GetUserInfo(ctx)
}

func (s *accountSrv) GetRemainingCredits(ctx context.Context) (int, error) {
	return s.gw.GetRemainingCredits(ctx)
}
