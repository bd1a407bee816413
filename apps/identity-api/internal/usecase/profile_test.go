package usecase

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/astrixforge/Device-Masker-sub000/apps/identity-api/internal/dto"
	"github.com/astrixforge/Device-Masker-sub000/pkg/apperr"
	"github.com/astrixforge/Device-Masker-sub000/pkg/engine"
	"github.com/astrixforge/Device-Masker-sub000/pkg/logging"
	"github.com/astrixforge/Device-Masker-sub000/pkg/model"
)

const (
	testTraceID   = "trace-001"
	testProfileID = "p1"
)

// setupProfileUseCase はテスト用のProfileUseCaseとモック群をセットアップする。
// ロックは常に即時取得できる。
func setupProfileUseCase(ctrl *gomock.Controller) (
	*ProfileUseCase,
	*MockProfileRepository,
	*MockLocker,
	*MockAuditLogger,
	*engine.Engine,
) {
	mockRepo := NewMockProfileRepository(ctrl)
	mockLocker := NewMockLocker(ctrl)
	mockAudit := NewMockAuditLogger(ctrl)
	eng := newTestEngine()

	uc := NewProfileUseCase(mockRepo, mockLocker, mockAudit, eng, logging.NewMasker(true))
	return uc, mockRepo, mockLocker, mockAudit, eng
}

func expectLock(locker *MockLocker) {
	locker.EXPECT().Lock(gomock.Any(), gomock.Any()).Return(func() {}, nil).AnyTimes()
}

// storedProfile はエンジンで生成した保存済みプロファイルを返すヘルパー。
func storedProfile(t *testing.T, eng *engine.Engine) *model.Profile {
	t.Helper()
	p, err := eng.NewProfile(testProfileID, "Test profile")
	if err != nil {
		t.Fatalf("NewProfile() error = %v", err)
	}
	return p
}

func groupView(t *testing.T, resp *dto.ProfileResponse, g model.CorrelationGroup) dto.GroupView {
	t.Helper()
	for _, v := range resp.Groups {
		if v.Group == string(g) {
			return v
		}
	}
	t.Fatalf("group %s not in response", g)
	return dto.GroupView{}
}

func TestProfileUseCase_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo, locker, audit, _ := setupProfileUseCase(ctrl)
		expectLock(locker)

		var saved *model.Profile
		repo.EXPECT().Exists(gomock.Any(), testProfileID).Return(false, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *model.Profile) error {
			saved = p
			return nil
		})
		audit.EXPECT().LogCreate(testTraceID, testProfileID)

		resp, err := uc.Create(context.Background(), testTraceID, &dto.CreateProfileRequest{ID: testProfileID, Name: "  Work phone  "})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if resp.ID != testProfileID || resp.Name != "Work phone" {
			t.Errorf("ID/Name = %q/%q", resp.ID, resp.Name)
		}
		if len(resp.Identifiers) != len(model.AllSpoofTypes()) {
			t.Errorf("len(Identifiers) = %d, want %d", len(resp.Identifiers), len(model.AllSpoofTypes()))
		}
		for _, id := range resp.Identifiers {
			if id.Value == nil {
				t.Errorf("%s has no value", id.Type)
			}
			if id.Enabled {
				t.Errorf("%s is enabled, want disabled", id.Type)
			}
		}
		if len(resp.Groups) != 3 {
			t.Fatalf("len(Groups) = %d, want 3", len(resp.Groups))
		}
		for _, g := range resp.Groups {
			if !g.Synced || g.State != "synced" || g.Anchor == "" {
				t.Errorf("group %+v should be synced with an anchor", g)
			}
		}
		if saved == nil || saved.ID != testProfileID {
			t.Fatalf("saved profile = %+v", saved)
		}
	})

	t.Run("generated id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo, locker, audit, _ := setupProfileUseCase(ctrl)
		expectLock(locker)
		uc.newID = func() string { return "generated-id" }

		repo.EXPECT().Exists(gomock.Any(), "generated-id").Return(false, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		audit.EXPECT().LogCreate(testTraceID, "generated-id")

		resp, err := uc.Create(context.Background(), testTraceID, &dto.CreateProfileRequest{Name: "auto"})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if resp.ID != "generated-id" {
			t.Errorf("ID = %q, want generated-id", resp.ID)
		}
	})

	t.Run("with reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo, locker, audit, _ := setupProfileUseCase(ctrl)
		expectLock(locker)

		repo.EXPECT().Exists(gomock.Any(), testProfileID).Return(false, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		audit.EXPECT().LogCreate(testTraceID, testProfileID)

		resp, err := uc.Create(context.Background(), testTraceID, &dto.CreateProfileRequest{
			ID:        testProfileID,
			Name:      "Tokyo",
			Reference: &dto.ReferenceRequest{Carrier: "44010", Preset: "galaxy_s24_ultra", Country: "JP"},
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if got := groupView(t, resp, model.GroupSIMCard).Anchor; got != "44010" {
			t.Errorf("SIM anchor = %q, want 44010", got)
		}
		if got := groupView(t, resp, model.GroupDeviceHardware).Anchor; got != "galaxy_s24_ultra" {
			t.Errorf("hardware anchor = %q, want galaxy_s24_ultra", got)
		}
		if got := groupView(t, resp, model.GroupLocation).Anchor; got != "JP" {
			t.Errorf("location anchor = %q, want JP", got)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo, locker, _, _ := setupProfileUseCase(ctrl)
		expectLock(locker)

		repo.EXPECT().Exists(gomock.Any(), testProfileID).Return(true, nil)

		_, err := uc.Create(context.Background(), testTraceID, &dto.CreateProfileRequest{ID: testProfileID, Name: "dup"})
		assertProblem(t, err, http.StatusConflict)
	})

	t.Run("invalid input", func(t *testing.T) {
		tests := []struct {
			name string
			req  *dto.CreateProfileRequest
		}{
			{"id with spaces", &dto.CreateProfileRequest{ID: "bad id", Name: "x"}},
			{"id too long", &dto.CreateProfileRequest{ID: fmt.Sprintf("%065d", 0), Name: "x"}},
			{"blank name", &dto.CreateProfileRequest{ID: testProfileID, Name: "   "}},
			{"name too long", &dto.CreateProfileRequest{ID: testProfileID, Name: fmt.Sprintf("%0129d", 0)}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				uc, _, _, _, _ := setupProfileUseCase(ctrl)

				_, err := uc.Create(context.Background(), testTraceID, tt.req)
				assertProblem(t, err, http.StatusBadRequest)
			})
		}
	})

	t.Run("unknown reference leaves store untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo, locker, _, _ := setupProfileUseCase(ctrl)
		expectLock(locker)

		repo.EXPECT().Exists(gomock.Any(), testProfileID).Return(false, nil)

		_, err := uc.Create(context.Background(), testTraceID, &dto.CreateProfileRequest{
			ID:        testProfileID,
			Name:      "x",
			Reference: &dto.ReferenceRequest{Carrier: "99999"},
		})
		assertProblem(t, err, http.StatusNotFound)
	})

	t.Run("lock timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _, locker, _, _ := setupProfileUseCase(ctrl)

		locker.EXPECT().Lock(gomock.Any(), testProfileID).Return(nil, context.DeadlineExceeded)

		_, err := uc.Create(context.Background(), testTraceID, &dto.CreateProfileRequest{ID: testProfileID, Name: "x"})
		pe := assertProblem(t, err, http.StatusConflict)
		if pe != ErrProfileBusy {
			t.Errorf("error = %v, want ErrProfileBusy", pe)
		}
	})
}

func TestProfileUseCase_RegenerateField(t *testing.T) {
	t.Run("phone only keeps the rest of the SIM group", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo, locker, audit, eng := setupProfileUseCase(ctrl)
		expectLock(locker)
		stored := storedProfile(t, eng)

		var saved *model.Profile
		repo.EXPECT().Get(gomock.Any(), testProfileID).Return(stored, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *model.Profile) error {
			saved = p
			return nil
		})
		audit.EXPECT().LogRegenerateField(testTraceID, testProfileID, "PHONE_NUMBER", stored.Anchors.CarrierMCCMNC)

		resp, err := uc.RegenerateField(context.Background(), testTraceID, testProfileID, "phone_number")
		if err != nil {
			t.Fatalf("RegenerateField() error = %v", err)
		}
		for _, typ := range model.GroupSIMCard.Types() {
			if typ == model.TypePhoneNumber {
				continue
			}
			before, _ := stored.RawValue(typ)
			after, _ := saved.RawValue(typ)
			if before != after {
				t.Errorf("%s changed from %q to %q", typ, before, after)
			}
		}
		if !groupView(t, resp, model.GroupSIMCard).Synced {
			t.Error("SIM group should stay synced")
		}
	})

	t.Run("profile not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo, locker, _, _ := setupProfileUseCase(ctrl)
		expectLock(locker)

		repo.EXPECT().Get(gomock.Any(), testProfileID).Return(nil, fmt.Errorf("%w: id=%s", apperr.ErrProfileNotFound, testProfileID))

		_, err := uc.RegenerateField(context.Background(), testTraceID, testProfileID, "IMEI")
		assertProblem(t, err, http.StatusNotFound)
	})

	t.Run("unknown type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _, _, _, _ := setupProfileUseCase(ctrl)

		_, err := uc.RegenerateField(context.Background(), testTraceID, testProfileID, "FAX_NUMBER")
		assertProblem(t, err, http.StatusBadRequest)
	})

	t.Run("save failure is not audited", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo, locker, _, eng := setupProfileUseCase(ctrl)
		expectLock(locker)

		repo.EXPECT().Get(gomock.Any(), testProfileID).Return(storedProfile(t, eng), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).
			Return(apperr.NewValkeyError("EXEC", "profile:p1", apperr.ErrValkeyConnection))

		_, err := uc.RegenerateField(context.Background(), testTraceID, testProfileID, "IMEI")
		pe := assertProblem(t, err, http.StatusServiceUnavailable)
		if pe.EventID != "VALKEY_CONN_ERR" {
			t.Errorf("EventID = %q, want VALKEY_CONN_ERR", pe.EventID)
		}
	})
}

func TestProfileUseCase_RegenerateGroup(t *testing.T) {
	t.Run("explicit carrier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo, locker, audit, eng := setupProfileUseCase(ctrl)
		expectLock(locker)

		repo.EXPECT().Get(gomock.Any(), testProfileID).Return(storedProfile(t, eng), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		audit.EXPECT().LogRegenerateGroup(testTraceID, testProfileID, "SIM_CARD", "310260", true)

		resp, err := uc.RegenerateGroup(context.Background(), testTraceID, testProfileID, "SIM_CARD", &dto.ReferenceRequest{Carrier: "310260"})
		if err != nil {
			t.Fatalf("RegenerateGroup() error = %v", err)
		}
		sim := groupView(t, resp, model.GroupSIMCard)
		if sim.Anchor != "310260" || !sim.Synced {
			t.Errorf("SIM group = %+v, want synced with anchor 310260", sim)
		}
	})

	t.Run("random reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo, locker, audit, eng := setupProfileUseCase(ctrl)
		expectLock(locker)

		repo.EXPECT().Get(gomock.Any(), testProfileID).Return(storedProfile(t, eng), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		audit.EXPECT().LogRegenerateGroup(testTraceID, testProfileID, "LOCATION", gomock.Any(), false)

		resp, err := uc.RegenerateGroup(context.Background(), testTraceID, testProfileID, "location", nil)
		if err != nil {
			t.Fatalf("RegenerateGroup() error = %v", err)
		}
		if !groupView(t, resp, model.GroupLocation).Synced {
			t.Error("location group should be synced")
		}
	})

	t.Run("unknown carrier fails before loading", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _, _, _, _ := setupProfileUseCase(ctrl)

		_, err := uc.RegenerateGroup(context.Background(), testTraceID, testProfileID, "SIM_CARD", &dto.ReferenceRequest{Carrier: "99999"})
		assertProblem(t, err, http.StatusNotFound)
	})

	t.Run("unknown group", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _, _, _, _ := setupProfileUseCase(ctrl)

		_, err := uc.RegenerateGroup(context.Background(), testTraceID, testProfileID, "BATTERY", nil)
		assertProblem(t, err, http.StatusBadRequest)
	})
}

func TestProfileUseCase_SetEnabledAndValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc, repo, locker, audit, eng := setupProfileUseCase(ctrl)
	expectLock(locker)
	stored := storedProfile(t, eng)

	var saved *model.Profile
	repo.EXPECT().Get(gomock.Any(), testProfileID).Return(stored, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *model.Profile) error {
		saved = p
		return nil
	})
	audit.EXPECT().LogEnable(testTraceID, testProfileID, "IMEI", true)

	resp, err := uc.SetEnabled(context.Background(), testTraceID, testProfileID, "IMEI", true)
	if err != nil {
		t.Fatalf("SetEnabled() error = %v", err)
	}
	for _, id := range resp.Identifiers {
		if id.Enabled != (id.Type == "IMEI") {
			t.Errorf("%s enabled = %v", id.Type, id.Enabled)
		}
	}

	repo.EXPECT().Get(gomock.Any(), testProfileID).Return(saved, nil)
	values, err := uc.Values(context.Background(), testProfileID)
	if err != nil {
		t.Fatalf("Values() error = %v", err)
	}
	want, _ := stored.RawValue(model.TypeIMEI)
	if len(values.Values) != 1 || values.Values["IMEI"] != want {
		t.Errorf("Values = %v, want only IMEI=%s", values.Values, want)
	}
}

func TestProfileUseCase_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo, locker, audit, _ := setupProfileUseCase(ctrl)
		expectLock(locker)

		repo.EXPECT().Delete(gomock.Any(), testProfileID).Return(nil)
		audit.EXPECT().LogDelete(testTraceID, testProfileID)

		if err := uc.Delete(context.Background(), testTraceID, testProfileID); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo, locker, _, _ := setupProfileUseCase(ctrl)
		expectLock(locker)

		repo.EXPECT().Delete(gomock.Any(), testProfileID).Return(apperr.ErrProfileNotFound)

		err := uc.Delete(context.Background(), testTraceID, testProfileID)
		assertProblem(t, err, http.StatusNotFound)
	})
}

func TestProfileUseCase_GetReportsInconsistentGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc, repo, _, _, eng := setupProfileUseCase(ctrl)

	tampered := storedProfile(t, eng).WithValues(map[model.SpoofType]string{
		model.TypeIMSI: "001010000000000",
	})
	repo.EXPECT().Get(gomock.Any(), testProfileID).Return(tampered, nil)

	resp, err := uc.Get(context.Background(), testProfileID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	sim := groupView(t, resp, model.GroupSIMCard)
	if sim.State != "synced" || sim.Synced {
		t.Errorf("SIM group = %+v, want stored state synced but Synced=false", sim)
	}
	if !groupView(t, resp, model.GroupDeviceHardware).Synced {
		t.Error("hardware group should be unaffected")
	}
}

func TestProfileUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc, repo, _, _, _ := setupProfileUseCase(ctrl)

	repo.EXPECT().List(gomock.Any()).Return(nil, nil)

	resp, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if resp.IDs == nil || len(resp.IDs) != 0 {
		t.Errorf("IDs = %v, want empty non-nil slice", resp.IDs)
	}
}
