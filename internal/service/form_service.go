package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/damoang/angple-community/internal/common"
	"github.com/damoang/angple-community/internal/domain"
	"github.com/damoang/angple-community/internal/repository"
	"github.com/damoang/angple-community/pkg/richtext"
	"github.com/damoang/angple-community/pkg/team"
	"github.com/go-playground/validator/v10"
)

// draftValidator checks draft fields. "plainmax" measures rich text by its plain-text length.
var draftValidator = newDraftValidator()

var (
	titleRule   = fmt.Sprintf("max=%d", domain.MaxTitleLength)
	contentRule = fmt.Sprintf("plainmax=%d", domain.MaxContentLength)
)

func newDraftValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("plainmax", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return richtext.PlainTextLength(fl.Field().String()) <= limit
	})
	return v
}

// FormController holds the create and edit form behaviour. Drafts are values:
// every operation returns the updated draft and leaves the caller's copy alone.
type FormController struct {
	repo repository.CommunityRepository
}

// NewFormController creates a FormController
func NewFormController(repo repository.CommunityRepository) *FormController {
	return &FormController{repo: repo}
}

// UpdateField applies one field edit. A rejected edit returns the draft unchanged
// together with a *common.ValidationError; nothing is truncated.
func (f *FormController) UpdateField(draft domain.Draft, field domain.DraftField, value string) (domain.Draft, error) {
	if err := validateField(field, value); err != nil {
		return draft, err
	}
	switch field {
	case domain.FieldTitle:
		draft.Title = value
	case domain.FieldContent:
		draft.Content = value
	case domain.FieldCategory:
		// 목록에 없는 구단은 통합(0)으로 보낸다
		if !team.IsValidLabel(value) {
			value = team.AllLabel
		}
		draft.Category = value
	}
	return draft, nil
}

func validateField(field domain.DraftField, value string) error {
	switch field {
	case domain.FieldTitle:
		if draftValidator.Var(value, titleRule) != nil {
			return &common.ValidationError{Field: string(field), Reason: common.ReasonTitleTooLong, Limit: domain.MaxTitleLength}
		}
	case domain.FieldContent:
		if draftValidator.Var(value, contentRule) != nil {
			return &common.ValidationError{Field: string(field), Reason: common.ReasonContentTooLong, Limit: domain.MaxContentLength}
		}
	case domain.FieldCategory:
	default:
		return &common.ValidationError{Field: string(field), Reason: common.ReasonUnknownField}
	}
	return nil
}

// ValidateDraft re-checks every limit of a complete draft
func ValidateDraft(draft domain.Draft) error {
	if err := validateField(domain.FieldTitle, draft.Title); err != nil {
		return err
	}
	return validateField(domain.FieldContent, draft.Content)
}

// SetAttachment replaces the attachment slot
func (f *FormController) SetAttachment(draft domain.Draft, attachment domain.Attachment) domain.Draft {
	draft.Attachment = attachment
	return draft
}

// RemoveAttachment empties the attachment slot. An existing remote file is detached
// on the remote first; a new upload is only dropped locally.
func (f *FormController) RemoveAttachment(ctx context.Context, session *domain.Session, postID int64, draft domain.Draft) (domain.Draft, error) {
	if draft.Attachment.Kind == domain.ExistingRemoteFile {
		if session == nil {
			return draft, common.ErrNotAuthenticated
		}
		if err := f.repo.RemoveFile(ctx, session, postID); err != nil {
			return draft, err
		}
	}
	draft.Attachment = domain.None()
	return draft, nil
}

// Submit validates and sends a draft. postID 0 creates a post, anything else replaces it.
// selectedCategory is carried back when the draft has none.
func (f *FormController) Submit(ctx context.Context, session *domain.Session, postID int64, draft domain.Draft, selectedCategory string) (*domain.SubmitResult, error) {
	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}
	if session == nil {
		return nil, common.ErrNotAuthenticated
	}
	if session.IsSuspended() {
		return nil, common.ErrSuspendedAccount
	}

	categoryID, _ := team.LabelToID(draft.Category)
	form := &repository.PostForm{
		Title:      draft.Title,
		Content:    draft.Content,
		CategoryID: categoryID,
		Attachment: draft.Attachment,
	}

	carried := draft.Category
	if carried == "" {
		carried = DefaultCategory(nil, selectedCategory)
	}
	result := &domain.SubmitResult{SelectedCategory: carried}

	if postID == 0 {
		id, err := f.repo.CreatePost(ctx, session, form)
		if err != nil {
			return nil, err
		}
		result.PostID = id
	} else {
		post, err := f.repo.GetPost(ctx, session, postID)
		if err != nil {
			return nil, err
		}
		if !session.IsAuthorOf(post) {
			return nil, common.ErrNotAuthor
		}
		if err := f.repo.UpdatePost(ctx, session, postID, form); err != nil {
			return nil, err
		}
		result.PostID = postID
	}

	if result.PostID > 0 {
		result.Next = DetailPath(result.PostID, carried)
	} else {
		result.Next = ListPath(carried)
	}
	return result, nil
}

// LoadEditDraft loads a post into a draft for its author
func (f *FormController) LoadEditDraft(ctx context.Context, session *domain.Session, postID int64) (domain.Draft, error) {
	if session == nil {
		return domain.Draft{}, common.ErrNotAuthenticated
	}
	post, err := f.repo.GetPost(ctx, session, postID)
	if err != nil {
		return domain.Draft{}, err
	}
	if !session.IsAuthorOf(post) {
		return domain.Draft{}, common.ErrNotAuthor
	}

	label, ok := team.IDToLabel(int(post.Category))
	if !ok {
		label = team.AllLabel
	}
	return domain.Draft{
		Title:      richtext.StripTitlePrefix(post.Title),
		Content:    post.Content,
		Category:   label,
		Attachment: domain.RemoteFile(post.ImagePath),
	}, nil
}

// NewDraftView renders a draft with its character counters
func NewDraftView(draft domain.Draft) domain.DraftView {
	return domain.DraftView{
		Title:          draft.Title,
		Content:        draft.Content,
		Category:       draft.Category,
		AttachmentKind: draft.Attachment.Kind.String(),
		AttachmentName: draft.Attachment.DisplayName(),
		TitleLength:    richtext.Length(draft.Title),
		TitleLimit:     domain.MaxTitleLength,
		ContentLength:  richtext.PlainTextLength(draft.Content),
		ContentLimit:   domain.MaxContentLength,
	}
}
