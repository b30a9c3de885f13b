package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&AdminUser{},
		&GuestGroup{},
		&Guest{},
		&Event{},
		&Activity{},
		&RSVP{},
		&Location{},
		&Accommodation{},
		&RoomType{},
		&RoomAssignment{},
		&Vendor{},
		&ContentPage{},
		&Section{},
		&Photo{},
		&NotificationLog{},
	)
}
