package constants

import "errors"

// Domain errors. Services wrap these with fmt.Errorf("%w: ...") and handlers map them to HTTP status codes.
var (
	ErrNotFound        = errors.New("kayıt bulunamadı")
	ErrBadRequest      = errors.New("geçersiz istek")
	ErrConflict        = errors.New("kayıt zaten mevcut")
	ErrUnauthorized    = errors.New("oturum açmanız gerekiyor")
	ErrForbidden       = errors.New("bu işlem için yetkiniz yok")
	ErrTooManyRequests = errors.New("çok fazla istek")
)

// User-facing messages
const (
	// auth
	MsgUnauthorized       = "Oturum açmanız gerekiyor"
	MsgInvalidToken       = "Geçersiz veya süresi dolmuş oturum"
	MsgForbidden          = "Bu işlem için yetkiniz yok"
	MsgInvalidCredentials = "E-posta veya şifre hatalı"
	MsgAccountDisabled    = "Hesabınız devre dışı bırakılmış"
	MsgEmailExists        = "Bu e-posta adresi zaten kayıtlı"

	// request
	MsgInvalidParams  = "Geçersiz parametre"
	MsgInvalidID      = "Geçersiz kimlik"
	MsgNotFound       = "Kayıt bulunamadı"
	MsgConflict       = "Kayıt zaten mevcut"
	MsgSlugExists     = "Bu kısa ad (slug) zaten kullanılıyor"
	MsgTooManyRequest = "Çok fazla deneme yaptınız, lütfen daha sonra tekrar deneyin"

	// domain rules
	MsgBuiltInCategory  = "Yerleşik medya kategorileri silinemez"
	MsgGalleryCycle     = "Galeri kendi alt galerisinin altına taşınamaz"
	MsgCaptchaFailed    = "Güvenlik doğrulaması başarısız"
	MsgFileTooLarge     = "Dosya boyutu sınırı aşıldı"
	MsgUnsupportedFile  = "Desteklenmeyen dosya türü"
	MsgFileRequired     = "Dosya seçilmedi"
	MsgCannotDeleteSelf = "Kendi hesabınızı silemezsiniz"

	// system
	MsgInternalServer = "Sunucu hatası"
)

// Error domain error carrying a message that is safe to show to the client
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	return e.Kind.Error() + ": " + e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NewError wraps kind with a client-facing message
func NewError(kind error, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// ClientMessage returns the message to show for err, falling back to def
func ClientMessage(err error, def string) string {
	var de *Error
	if errors.As(err, &de) && de.Msg != "" {
		return de.Msg
	}
	return def
}
