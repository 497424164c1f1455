package i18n

// Message keys used by the community views
const (
	KeyLoginRequired   = "auth.login_required"
	KeyTokenExpired    = "auth.token_expired"
	KeySuspended       = "member.suspended"
	KeyNotAuthorEdit   = "post.not_author_edit"
	KeyNotAuthorDelete = "post.not_author_delete"
	KeyPostNotFound    = "post.not_found"
	KeyNoPrevious      = "post.no_previous"
	KeyNoNext          = "post.no_next"
	KeyDeleteConfirm   = "post.delete_confirm"
	KeyCreateFailed    = "post.create_failed"
	KeyUpdateFailed    = "post.update_failed"
	KeyDeleteFailed    = "post.delete_failed"
	KeyFetchFailed     = "post.fetch_failed"
	KeyTitleTooLong    = "draft.title_too_long"
	KeyContentTooLong  = "draft.content_too_long"
	KeyFileNotFound    = "file.not_found"
	KeyFileRemoveFail  = "file.remove_failed"
	KeyBadRequest      = "error.bad_request"
	KeyRateLimited     = "rate_limit.exceeded"
	KeyInternal        = "error.internal"
)

// DefaultMessages returns built-in translations for all supported locales.
// These can be overridden by loading JSON files from a directory.
func DefaultMessages() map[Locale]map[string]string {
	return map[Locale]map[string]string{
		LocaleKo: koMessages,
		LocaleEn: enMessages,
		LocaleJa: jaMessages,
	}
}

// NewDefaultBundle returns a bundle preloaded with DefaultMessages, falling back to Korean
func NewDefaultBundle() *Bundle {
	b := NewBundle(LocaleKo)
	for locale, msgs := range DefaultMessages() {
		b.LoadMessages(locale, msgs)
	}
	return b
}

var koMessages = map[string]string{
	KeyLoginRequired:   "로그인 후 이용해 주세요.",
	KeyTokenExpired:    "로그인이 만료되었습니다. 다시 로그인해 주세요.",
	KeySuspended:       "정지상태입니다.",
	KeyNotAuthorEdit:   "작성자만 수정할 수 있습니다.",
	KeyNotAuthorDelete: "작성자만 삭제할 수 있습니다.",
	KeyPostNotFound:    "게시글을 찾을 수 없습니다.",
	KeyNoPrevious:      "이전 글이 없습니다.",
	KeyNoNext:          "다음 글이 없습니다.",
	KeyDeleteConfirm:   "정말로 삭제하시겠습니까?",
	KeyCreateFailed:    "게시글 작성에 실패했습니다.",
	KeyUpdateFailed:    "게시글 수정에 실패했습니다.",
	KeyDeleteFailed:    "게시글 삭제에 실패했습니다.",
	KeyFetchFailed:     "게시글을 불러오지 못했습니다.",
	KeyTitleTooLong:    "제목은 최대 %d자까지 입력할 수 있습니다.",
	KeyContentTooLong:  "최대 %d자까지 입력할 수 있습니다.",
	KeyFileNotFound:    "파일을 찾을 수 없습니다.",
	KeyFileRemoveFail:  "첨부파일 삭제에 실패했습니다.",
	KeyBadRequest:      "잘못된 요청입니다.",
	KeyRateLimited:     "요청 제한을 초과했습니다. %d초 후 다시 시도해주세요",
	KeyInternal:        "서버 내부 오류가 발생했습니다.",
}

var enMessages = map[string]string{
	KeyLoginRequired:   "Please log in to continue.",
	KeyTokenExpired:    "Your login has expired. Please log in again.",
	KeySuspended:       "Your account is suspended.",
	KeyNotAuthorEdit:   "Only the author can edit this post.",
	KeyNotAuthorDelete: "Only the author can delete this post.",
	KeyPostNotFound:    "Post not found.",
	KeyNoPrevious:      "There is no previous post.",
	KeyNoNext:          "There is no next post.",
	KeyDeleteConfirm:   "Are you sure you want to delete this post?",
	KeyCreateFailed:    "Failed to create the post.",
	KeyUpdateFailed:    "Failed to update the post.",
	KeyDeleteFailed:    "Failed to delete the post.",
	KeyFetchFailed:     "Failed to load posts.",
	KeyTitleTooLong:    "Titles can be at most %d characters.",
	KeyContentTooLong:  "Content can be at most %d characters.",
	KeyFileNotFound:    "File not found.",
	KeyFileRemoveFail:  "Failed to remove the attachment.",
	KeyBadRequest:      "Invalid request.",
	KeyRateLimited:     "Rate limit exceeded. Please try again in %d seconds",
	KeyInternal:        "An internal server error occurred.",
}

var jaMessages = map[string]string{
	KeyLoginRequired:   "ログインしてからご利用ください。",
	KeyTokenExpired:    "ログインの有効期限が切れました。再度ログインしてください。",
	KeySuspended:       "アカウントが停止されています。",
	KeyNotAuthorEdit:   "投稿者のみ編集できます。",
	KeyNotAuthorDelete: "投稿者のみ削除できます。",
	KeyPostNotFound:    "投稿が見つかりません。",
	KeyNoPrevious:      "前の投稿はありません。",
	KeyNoNext:          "次の投稿はありません。",
	KeyDeleteConfirm:   "本当に削除しますか？",
	KeyCreateFailed:    "投稿の作成に失敗しました。",
	KeyUpdateFailed:    "投稿の更新に失敗しました。",
	KeyDeleteFailed:    "投稿の削除に失敗しました。",
	KeyFetchFailed:     "投稿を読み込めませんでした。",
	KeyTitleTooLong:    "タイトルは最大%d文字まで入力できます。",
	KeyContentTooLong:  "最大%d文字まで入力できます。",
	KeyFileNotFound:    "ファイルが見つかりません。",
	KeyFileRemoveFail:  "添付ファイルの削除に失敗しました。",
	KeyBadRequest:      "不正なリクエストです。",
	KeyRateLimited:     "リクエスト制限を超えました。%d秒後に再試行してください",
	KeyInternal:        "サーバー内部エラーが発生しました。",
}
