package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/astrixforge/Device-Masker-sub000/apps/identity-api/internal/config"
	"github.com/astrixforge/Device-Masker-sub000/apps/identity-api/internal/dto"
	"github.com/astrixforge/Device-Masker-sub000/pkg/apperr"
	"github.com/astrixforge/Device-Masker-sub000/pkg/engine"
	"github.com/astrixforge/Device-Masker-sub000/pkg/logging"
	"github.com/astrixforge/Device-Masker-sub000/pkg/model"
)

const maxNameLength = 128

var profileIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ProfileUseCase はプロファイル管理を実装する。
// 更新系の操作はプロファイル単位のロック内で 読み込み→再生成→保存 を行う。
type ProfileUseCase struct {
	repo   ProfileRepository
	locker Locker
	audit  AuditLogger
	engine *engine.Engine
	fields *logging.CommonFields
	newID  func() string
}

// NewProfileUseCase は新しいProfileUseCaseを生成する。
func NewProfileUseCase(
	repo ProfileRepository,
	locker Locker,
	audit AuditLogger,
	eng *engine.Engine,
	masker *logging.Masker,
) *ProfileUseCase {
	return &ProfileUseCase{
		repo:   repo,
		locker: locker,
		audit:  audit,
		engine: eng,
		fields: logging.NewCommonFields(masker),
		newID:  uuid.NewString,
	}
}

// Create はプロファイルを作成する。参照オブジェクトが指定された場合は対応するグループに適用する。
func (u *ProfileUseCase) Create(ctx context.Context, traceID string, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	id := req.ID
	if id == "" {
		id = u.newID()
	}
	if err := validateProfileID(id); err != nil {
		return nil, newProblem(err, "PROFILE_CREATE_ERR", "invalid profile id")
	}
	name, err := normalizeName(req.Name)
	if err != nil {
		return nil, newProblem(err, "PROFILE_CREATE_ERR", "invalid profile name")
	}

	var created *model.Profile
	err = u.withLock(ctx, id, func() error {
		exists, err := u.repo.Exists(ctx, id)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: id=%s", apperr.ErrProfileExists, id)
		}
		p, err := u.engine.NewProfile(id, name)
		if err != nil {
			return err
		}
		if p, err = u.applyReference(p, req.Reference); err != nil {
			return err
		}
		if err := u.repo.Save(ctx, p); err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, newProblem(err, "PROFILE_CREATE_ERR", "profile creation failed")
	}

	u.audit.LogCreate(traceID, id)
	slog.Info("profile created",
		logging.WithTraceID(traceID),
		logging.WithEventID("PROFILE_CREATE"),
		logging.WithProfileID(id),
	)
	return u.toResponse(created), nil
}

// Get はプロファイルを取得する。
func (u *ProfileUseCase) Get(ctx context.Context, id string) (*dto.ProfileResponse, error) {
	p, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, newProblem(err, "PROFILE_GET_ERR", "profile lookup failed")
	}
	return u.toResponse(p), nil
}

// List はプロファイルID一覧を返す。
func (u *ProfileUseCase) List(ctx context.Context) (*dto.ProfileListResponse, error) {
	ids, err := u.repo.List(ctx)
	if err != nil {
		return nil, newProblem(err, "PROFILE_LIST_ERR", "profile list failed")
	}
	if ids == nil {
		ids = []string{}
	}
	return &dto.ProfileListResponse{IDs: ids}, nil
}

// Delete はプロファイルを削除する。
func (u *ProfileUseCase) Delete(ctx context.Context, traceID, id string) error {
	err := u.withLock(ctx, id, func() error {
		return u.repo.Delete(ctx, id)
	})
	if err != nil {
		return newProblem(err, "PROFILE_DELETE_ERR", "profile deletion failed")
	}

	u.audit.LogDelete(traceID, id)
	slog.Info("profile deleted",
		logging.WithTraceID(traceID),
		logging.WithEventID("PROFILE_DELETE"),
		logging.WithProfileID(id),
	)
	return nil
}

// RegenerateField は参照オブジェクトを保ったまま識別子を1つ再生成する。
func (u *ProfileUseCase) RegenerateField(ctx context.Context, traceID, id, spoofType string) (*dto.ProfileResponse, error) {
	t, err := model.ParseSpoofType(spoofType)
	if err != nil {
		return nil, newProblem(err, "FIELD_REGEN_ERR", "invalid spoof type")
	}

	p, err := u.mutate(ctx, id, func(p *model.Profile) (*model.Profile, error) {
		return u.engine.RegenerateField(p, t)
	})
	if err != nil {
		return nil, newProblem(err, "FIELD_REGEN_ERR", "field regeneration failed")
	}

	anchor := p.Anchors.For(t.Group())
	u.audit.LogRegenerateField(traceID, id, string(t), anchor)
	value, _ := p.RawValue(t)
	args := u.fields.RegenLogFields(traceID, "FIELD_REGEN", id)
	args = append(args, logging.WithSpoofType(string(t)), u.fields.WithValue(string(t), value))
	slog.Info("field regenerated", args...)
	return u.toResponse(p), nil
}

// RegenerateGroup は相関グループ全体を再生成する。
// refが空の場合は新しい参照オブジェクトをランダムに選ぶ。
func (u *ProfileUseCase) RegenerateGroup(ctx context.Context, traceID, id, group string, ref *dto.ReferenceRequest) (*dto.ProfileResponse, error) {
	g, err := model.ParseGroup(group)
	if err != nil {
		return nil, newProblem(err, "GROUP_REGEN_ERR", "invalid correlation group")
	}
	explicit := !ref.IsEmpty()

	var resolved *engine.Reference
	if explicit {
		resolved, err = engine.ResolveReference(u.engine.Registry(), ref.Carrier, ref.Preset, ref.Country)
		if err != nil {
			return nil, newProblem(err, "GROUP_REGEN_ERR", "reference lookup failed")
		}
	}

	p, err := u.mutate(ctx, id, func(p *model.Profile) (*model.Profile, error) {
		return u.engine.ChangeReference(p, g, resolved)
	})
	if err != nil {
		return nil, newProblem(err, "GROUP_REGEN_ERR", "group regeneration failed")
	}

	anchor := p.Anchors.For(g)
	u.audit.LogRegenerateGroup(traceID, id, string(g), anchor, explicit)
	args := u.fields.RegenLogFields(traceID, "GROUP_REGEN", id)
	args = append(args, logging.WithGroup(string(g)), slog.String("anchor", anchor), slog.Bool("explicit", explicit))
	slog.Info("group regenerated", args...)
	return u.toResponse(p), nil
}

// SetEnabled は識別子の有効フラグを変更する。値は変更しない。
func (u *ProfileUseCase) SetEnabled(ctx context.Context, traceID, id, spoofType string, enabled bool) (*dto.ProfileResponse, error) {
	t, err := model.ParseSpoofType(spoofType)
	if err != nil {
		return nil, newProblem(err, "PROFILE_ENABLE_ERR", "invalid spoof type")
	}

	p, err := u.mutate(ctx, id, func(p *model.Profile) (*model.Profile, error) {
		return p.WithEnabled(t, enabled), nil
	})
	if err != nil {
		return nil, newProblem(err, "PROFILE_ENABLE_ERR", "identifier update failed")
	}

	u.audit.LogEnable(traceID, id, string(t), enabled)
	slog.Info("identifier enabled flag changed",
		logging.WithTraceID(traceID),
		logging.WithEventID("PROFILE_ENABLE"),
		logging.WithProfileID(id),
		logging.WithSpoofType(string(t)),
		slog.Bool("enabled", enabled),
	)
	return u.toResponse(p), nil
}

// Values は有効な識別子の値だけを返す。
func (u *ProfileUseCase) Values(ctx context.Context, id string) (*dto.ValuesResponse, error) {
	p, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, newProblem(err, "PROFILE_GET_ERR", "profile lookup failed")
	}
	return &dto.ValuesResponse{ID: p.ID, Values: stringValues(p.EnabledValues())}, nil
}

// mutate はロック内でプロファイルを読み込み、fnの結果を保存する。
// fnがエラーを返した場合は何も保存しない。
func (u *ProfileUseCase) mutate(ctx context.Context, id string, fn func(*model.Profile) (*model.Profile, error)) (*model.Profile, error) {
	var out *model.Profile
	err := u.withLock(ctx, id, func() error {
		p, err := u.repo.Get(ctx, id)
		if err != nil {
			return err
		}
		next, err := fn(p)
		if err != nil {
			return err
		}
		if err := u.repo.Save(ctx, next); err != nil {
			return err
		}
		out = next
		return nil
	})
	return out, err
}

// withLock はプロファイルのロックを取得してfnを実行する。
// ProfileLockTimeout以内に取得できない場合はErrProfileBusyを返す。
func (u *ProfileUseCase) withLock(ctx context.Context, id string, fn func() error) error {
	lockCtx, cancel := context.WithTimeout(ctx, config.ProfileLockTimeout)
	defer cancel()

	unlock, err := u.locker.Lock(lockCtx, id)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrProfileBusy
		}
		return err
	}
	defer unlock()
	return fn()
}

// applyReference は作成時に指定された参照オブジェクトを対応するグループに適用する。
// 国だけが指定された場合、SIM_CARDはその国のキャリアから選ばれる。
func (u *ProfileUseCase) applyReference(p *model.Profile, r *dto.ReferenceRequest) (*model.Profile, error) {
	if r.IsEmpty() {
		return p, nil
	}
	ref, err := engine.ResolveReference(u.engine.Registry(), r.Carrier, r.Preset, r.Country)
	if err != nil {
		return nil, err
	}
	apply := map[model.CorrelationGroup]bool{
		model.GroupSIMCard:        r.Carrier != "" || r.Country != "",
		model.GroupDeviceHardware: r.Preset != "",
		model.GroupLocation:       r.Country != "",
	}
	for _, g := range model.AllGroups() {
		if !apply[g] {
			continue
		}
		if p, err = u.engine.ChangeReference(p, g, ref); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// toResponse はプロファイルをレスポンスに変換する。
// グループの整合性はここで再検証し、結果をGroupView.Syncedに反映する。
func (u *ProfileUseCase) toResponse(p *model.Profile) *dto.ProfileResponse {
	resp := &dto.ProfileResponse{
		ID:          p.ID,
		Name:        p.Name,
		Identifiers: make([]dto.IdentifierView, 0, len(model.AllSpoofTypes())),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	for _, t := range model.AllSpoofTypes() {
		d := p.Identifier(t)
		resp.Identifiers = append(resp.Identifiers, dto.IdentifierView{
			Type:    string(t),
			Group:   string(t.Group()),
			Value:   d.Value,
			Enabled: d.Enabled,
		})
	}
	for _, g := range model.AllGroups() {
		if !g.IsCorrelated() {
			continue
		}
		state := p.GroupState(g)
		synced := state == model.GroupSynced
		if synced {
			if err := u.engine.VerifyGroup(p, g); err != nil {
				slog.Warn("profile group is inconsistent",
					logging.WithEventID("INVARIANT_ERR"),
					logging.WithProfileID(p.ID),
					logging.WithGroup(string(g)),
					logging.WithError(err),
				)
				synced = false
			}
		}
		resp.Groups = append(resp.Groups, dto.GroupView{
			Group:  string(g),
			Anchor: p.Anchors.For(g),
			State:  string(state),
			Synced: synced,
		})
	}
	return resp
}

func validateProfileID(id string) error {
	if !profileIDPattern.MatchString(id) {
		return apperr.NewValidationError("id", "id must be 1-64 characters of letters, digits, '-' or '_'")
	}
	return nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperr.NewValidationError("name", "name is required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", apperr.NewValidationError("name", fmt.Sprintf("name must be at most %d characters", maxNameLength))
	}
	return name, nil
}
