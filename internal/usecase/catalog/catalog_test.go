package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/mleroux/videogen-ms-go/internal/mock"
	"github.com/mleroux/videogen-ms-go/internal/model"
)

func TestAvatarCatalog_ListAvatars(t *testing.T) {
	gw := &mock.Gateway{AvatarsOut: []model.Avatar{{AvatarID: "a1", AvatarName: "Anna"}}}
	svc := NewAvatarCatalog(gw)

	avatars, err := svc.ListAvatars(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(avatars) != 1 || avatars[0].AvatarID != "a1" {
		t.Errorf("unexpected avatars %+v", avatars)
	}
}

func TestAvatarCatalog_DetailsRequiresID(t *testing.T) {
	svc := NewAvatarCatalog(&mock.Gateway{})
	if _, err := svc.GetAvatarDetails(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty avatar_id, got nil")
	}
}

func TestAvatarCatalog_ListAvatarGroups(t *testing.T) {
	gw := &mock.Gateway{GroupsOut: []model.AvatarGroup{{ID: "g1"}}, GroupTotalOut: 7}
	svc := NewAvatarCatalog(gw)

	out, err := svc.ListAvatarGroups(context.Background(), true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.TotalCount != 7 || len(out.Groups) != 1 {
		t.Errorf("unexpected output %+v", out)
	}
}

func TestVoiceCatalog_PropagatesError(t *testing.T) {
	gw := &mock.Gateway{VoicesErr: errors.New("provider down")}
	svc := NewVoiceCatalog(gw)

	if _, err := svc.ListVoices(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestTemplateCatalog_DetailsRequiresID(t *testing.T) {
	svc := NewTemplateCatalog(&mock.Gateway{})
	if _, err := svc.GetTemplateDetails(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty template_id, got nil")
	}
}
