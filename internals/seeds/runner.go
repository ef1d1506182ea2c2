package seeds

import (
	"log"

	"gorm.io/gorm"

	invitationModel "undanganku_backend/internals/features/invitation/model"
	userModel "undanganku_backend/internals/features/users/user/model"
	invitations "undanganku_backend/internals/seeds/invitations"
	users "undanganku_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {
	if err := db.AutoMigrate(&userModel.UserModel{}, &invitationModel.InvitationModel{}); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ Migrasi tabel users & invitations selesai.")

	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	invitations.SeedInvitationFromJSON(db, "internals/seeds/invitations/data_invitation.json")
}
