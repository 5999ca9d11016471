package notes

import (
	"context"
	"fmt"

	"github.com/imkira/go-observer"

	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
	"github.com/evgeniy-krivenko/exec-notes/pkg/logger/slogx"
)

type notesRepository interface {
	CreateNote(ctx context.Context, createdBy, content string, opts entity.CreateNoteOptions) (entity.Note, error)
	GetNote(ctx context.Context, id string) (entity.Note, error)
	UpdateNote(ctx context.Context, id, content string, title *string) error
	DeleteNote(ctx context.Context, id string) error
	ListOwnNotes(ctx context.Context, ownerRole entity.Role, createdBy string) ([]entity.Note, error)
	ListSharedNotes(ctx context.Context, recipient string, role entity.Role) ([]entity.Note, error)
	ListNotifications(ctx context.Context, recipient string, limit int) ([]entity.Notification, error)

	ResolveRoleUser(ctx context.Context, role entity.Role) (string, error)
	UpsertShare(ctx context.Context, share entity.Share) (entity.Share, error)
	ListNoteShares(ctx context.Context, noteID string) ([]entity.Share, error)
	DeleteShares(ctx context.Context, noteID, sharedBy, recipient string) (int64, error)
	SetNoteFlags(ctx context.Context, noteID string, flags entity.NoteFlags) error

	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context, recipient string) error
}

type transactor interface {
	RunInTx(ctx context.Context, f func(context.Context) error) error
}

type identity interface {
	CurrentUser(ctx context.Context) (entity.CurrentUser, error)
}

type changeFeed interface {
	Subscribe(ctx context.Context) (<-chan entity.ChangeEvent, error)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	repo       notesRepository `option:"mandatory" validate:"required"`
	transactor transactor      `option:"mandatory" validate:"required"`
	identity   identity        `option:"mandatory" validate:"required"`

	feed changeFeed
}

// Usecase is the store-backed note backend: note CRUD, role sharing and
// notification read state.
type Usecase struct {
	Options
	observer observer.Property
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes usecase options: %v", err)
	}

	prop := observer.NewProperty(entity.ChangeEvent{})

	return &Usecase{Options: opts, observer: prop}, nil
}

func (u *Usecase) ListOwnNotes(ctx context.Context, ownerRole entity.Role, userID string) ([]entity.Note, error) {
	if !ownerRole.Valid() {
		return nil, entity.InvalidRoleError(ownerRole)
	}

	notes, err := u.repo.ListOwnNotes(ctx, ownerRole, userID)
	if err != nil {
		return nil, fmt.Errorf("usecase list own notes: %w", err)
	}

	return notes, nil
}

func (u *Usecase) ListSharedNotes(ctx context.Context, userID string, role entity.Role) ([]entity.Note, error) {
	notes, err := u.repo.ListSharedNotes(ctx, userID, role)
	if err != nil {
		return nil, fmt.Errorf("usecase list shared notes: %w", err)
	}

	return notes, nil
}

func (u *Usecase) ListNotifications(ctx context.Context, userID string, limit int) ([]entity.Notification, error) {
	notifications, err := u.repo.ListNotifications(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("usecase list notifications: %w", err)
	}

	return notifications, nil
}

func (u *Usecase) CreateNote(ctx context.Context, content string, opts entity.CreateNoteOptions) (entity.Note, error) {
	user, err := u.identity.CurrentUser(ctx)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase create note: %w", err)
	}

	if err := opts.Validate(content); err != nil {
		return entity.Note{}, fmt.Errorf("usecase create note: %w", err)
	}

	note, err := u.repo.CreateNote(ctx, user.ID, content, opts)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase create note: %w", err)
	}

	u.publish(entity.CollectionNotes, note.ID)

	slogx.Info(ctx, "success to create note", slogx.UserID(user.ID), slogx.NoteID(note.ID))
	return note, nil
}

func (u *Usecase) GetNote(ctx context.Context, id string) (entity.Note, error) {
	note, err := u.repo.GetNote(ctx, id)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase get note: %w", err)
	}

	return note, nil
}

// UpdateNote does not check edit rights; the store's access policy does.
func (u *Usecase) UpdateNote(ctx context.Context, id, content string, title *string) error {
	if err := entity.ValidateContent(content); err != nil {
		return fmt.Errorf("usecase update note: %w", err)
	}

	if err := u.repo.UpdateNote(ctx, id, content, title); err != nil {
		return fmt.Errorf("usecase update note: %w", err)
	}

	u.publish(entity.CollectionNotes, id)

	return nil
}

func (u *Usecase) DeleteNote(ctx context.Context, id string) error {
	if err := u.repo.DeleteNote(ctx, id); err != nil {
		return fmt.Errorf("usecase delete note: %w", err)
	}

	u.publish(entity.CollectionNotes, id)

	return nil
}

func (u *Usecase) publish(c entity.Collection, noteID string) {
	u.observer.Update(entity.ChangeEvent{Collection: c, NoteID: noteID})
}
