package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// InvitationModel adalah satu-satunya aggregate root konten undangan.
// Seluruh section (hero, mempelai, acara, dst) disimpan sebagai kolom JSONB
// supaya PUT parsial cukup mengganti kolom per top-level key (last write wins,
// tanpa version token).
type InvitationModel struct {
	InvitationID uuid.UUID `gorm:"column:invitation_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"-"`
	Slug         string    `gorm:"column:slug;type:varchar(100);uniqueIndex;not null" json:"slug"`

	Hero           datatypes.JSON `gorm:"column:hero;type:jsonb;not null;default:'{}'::jsonb" json:"hero"`
	Overlay        datatypes.JSON `gorm:"column:overlay;type:jsonb;not null;default:'{}'::jsonb" json:"overlay"`
	Mempelai       datatypes.JSON `gorm:"column:mempelai;type:jsonb;not null;default:'{}'::jsonb" json:"mempelai"`
	Acara          datatypes.JSON `gorm:"column:acara;type:jsonb;not null;default:'[]'::jsonb" json:"acara"`
	WeddingStory   datatypes.JSON `gorm:"column:wedding_story;type:jsonb;not null;default:'[]'::jsonb" json:"weddingStory"`
	PaymentMethods datatypes.JSON `gorm:"column:payment_methods;type:jsonb;not null;default:'[]'::jsonb" json:"paymentMethods"`
	Comments       datatypes.JSON `gorm:"column:comments;type:jsonb;not null;default:'[]'::jsonb" json:"comments"`
	Gallery        datatypes.JSON `gorm:"column:gallery;type:jsonb;not null;default:'[]'::jsonb" json:"gallery"`
	MediaLibrary   datatypes.JSON `gorm:"column:media_library;type:jsonb;not null;default:'[]'::jsonb" json:"mediaLibrary"`

	IsLocked bool   `gorm:"column:is_locked;not null;default:false" json:"isLocked"`
	Password string `gorm:"column:password;type:varchar(255)" json:"password"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName sets the name of the table
func (InvitationModel) TableName() string {
	return "invitations"
}

// MainSlug: mode single-slug, public site & dashboard selalu pakai slug ini.
const MainSlug = "main"
