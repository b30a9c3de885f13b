package repository

import (
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository/dao"
)

// Each repository's DAO interface must be satisfied by the concrete gorm
// implementation it is wired with in the server.
var (
	_ AccommodationDAO = (*dao.AccommodationDAO)(nil)
	_ AdminUserDAO     = (*dao.AdminUserDAO)(nil)
	_ ContentDAO       = (*dao.ContentDAO)(nil)
	_ GuestDAO         = (*dao.GuestDAO)(nil)
	_ LocationDAO      = (*dao.LocationDAO)(nil)
	_ NotificationDAO  = (*dao.NotificationDAO)(nil)
	_ PhotoDAO         = (*dao.PhotoDAO)(nil)
	_ RSVPDAO          = (*dao.RSVPDAO)(nil)
	_ ScheduleDAO      = (*dao.ScheduleDAO)(nil)
	_ VendorDAO        = (*dao.VendorDAO)(nil)
)
