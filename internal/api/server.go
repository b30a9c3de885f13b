package api

import (
	"fmt"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/jjam103/wedding-platform-v2-sub016/docs"
	v1 "github.com/jjam103/wedding-platform-v2-sub016/internal/api/handler/v1"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/api/middleware"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/config"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/notifier"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/objstore"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository/dao"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) (*Server, error) {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	photoHandler, err := s.initPhotoHandler(db)
	if err != nil {
		return nil, fmt.Errorf("api.NewServer -> s.initPhotoHandler -> %w", err)
	}

	handlers := &handlerSet{
		auth:          s.initAuthHandler(db),
		guest:         s.initGuestHandler(db),
		schedule:      s.initScheduleHandler(db),
		rsvp:          s.initRSVPHandler(db),
		location:      s.initLocationHandler(db),
		accommodation: s.initAccommodationHandler(db),
		vendor:        s.initVendorHandler(db),
		content:       s.initContentHandler(db),
		photo:         photoHandler,
		notification:  s.initNotificationHandler(db),
		itinerary:     s.initItineraryHandler(db),
	}
	s.MountHandlers(handlers)

	return s, nil
}

type handlerSet struct {
	auth          *v1.AuthHandler
	guest         *v1.GuestHandler
	schedule      *v1.ScheduleHandler
	rsvp          *v1.RSVPHandler
	location      *v1.LocationHandler
	accommodation *v1.AccommodationHandler
	vendor        *v1.VendorHandler
	content       *v1.ContentHandler
	photo         *v1.PhotoHandler
	notification  *v1.NotificationHandler
	itinerary     *v1.ItineraryHandler
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	adminDAO := dao.NewAdminUserDAO(db)
	repo := repository.NewAdminUserRepository(adminDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initGuestHandler(db *gorm.DB) *v1.GuestHandler {
	guestDAO := dao.NewGuestDAO(db)
	repo := repository.NewGuestRepository(guestDAO)
	svc := service.NewGuestService(repo)
	handler := v1.NewGuestHandler(svc)

	return handler
}

func (s *Server) initScheduleHandler(db *gorm.DB) *v1.ScheduleHandler {
	scheduleDAO := dao.NewScheduleDAO(db)
	repo := repository.NewScheduleRepository(scheduleDAO)
	svc := service.NewScheduleService(repo)
	handler := v1.NewScheduleHandler(svc)

	return handler
}

func (s *Server) initRSVPHandler(db *gorm.DB) *v1.RSVPHandler {
	rsvpDAO := dao.NewRSVPDAO(db)
	repo := repository.NewRSVPRepository(rsvpDAO)
	scheduleRepo := repository.NewScheduleRepository(dao.NewScheduleDAO(db))
	svc := service.NewRSVPService(repo, scheduleRepo)
	handler := v1.NewRSVPHandler(svc)

	return handler
}

func (s *Server) initLocationHandler(db *gorm.DB) *v1.LocationHandler {
	locationDAO := dao.NewLocationDAO(db)
	repo := repository.NewLocationRepository(locationDAO)
	svc := service.NewLocationService(repo)
	handler := v1.NewLocationHandler(svc)

	return handler
}

func (s *Server) initAccommodationHandler(db *gorm.DB) *v1.AccommodationHandler {
	accommodationDAO := dao.NewAccommodationDAO(db)
	repo := repository.NewAccommodationRepository(accommodationDAO)
	guestRepo := repository.NewGuestRepository(dao.NewGuestDAO(db))
	svc := service.NewAccommodationService(repo, guestRepo)
	handler := v1.NewAccommodationHandler(svc)

	return handler
}

func (s *Server) initVendorHandler(db *gorm.DB) *v1.VendorHandler {
	vendorDAO := dao.NewVendorDAO(db)
	repo := repository.NewVendorRepository(vendorDAO)
	svc := service.NewVendorService(repo)
	handler := v1.NewVendorHandler(svc)

	return handler
}

func (s *Server) initContentHandler(db *gorm.DB) *v1.ContentHandler {
	contentDAO := dao.NewContentDAO(db)
	repo := repository.NewContentRepository(contentDAO)
	svc := service.NewContentService(repo)
	handler := v1.NewContentHandler(svc)

	return handler
}

func (s *Server) initPhotoHandler(db *gorm.DB) (*v1.PhotoHandler, error) {
	store, err := objstore.NewFSStore(s.Config.Photos.RootDir)
	if err != nil {
		return nil, fmt.Errorf("objstore.NewFSStore -> %w", err)
	}

	photoDAO := dao.NewPhotoDAO(db)
	repo := repository.NewPhotoRepository(photoDAO)
	svc := service.NewPhotoService(repo, store)
	handler := v1.NewPhotoHandler(svc)

	return handler, nil
}

func (s *Server) initNotificationHandler(db *gorm.DB) *v1.NotificationHandler {
	notificationDAO := dao.NewNotificationDAO(db)
	repo := repository.NewNotificationRepository(notificationDAO)
	guestRepo := repository.NewGuestRepository(dao.NewGuestDAO(db))
	svc := service.NewNotificationService(repo, guestRepo, notifier.NewLogSender())
	handler := v1.NewNotificationHandler(svc)

	return handler
}

func (s *Server) initItineraryHandler(db *gorm.DB) *v1.ItineraryHandler {
	guestRepo := repository.NewGuestRepository(dao.NewGuestDAO(db))
	rsvpRepo := repository.NewRSVPRepository(dao.NewRSVPDAO(db))
	scheduleRepo := repository.NewScheduleRepository(dao.NewScheduleDAO(db))
	accommodationRepo := repository.NewAccommodationRepository(dao.NewAccommodationDAO(db))
	svc := service.NewItineraryService(guestRepo, rsvpRepo, scheduleRepo, accommodationRepo)
	handler := v1.NewItineraryHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(middleware.Metrics())
}

func (s *Server) MountHandlers(h *handlerSet) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", h.auth.HandleSignup)
		auth.POST("/auth/login", h.auth.HandleLogin)
	}

	authed := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authed.POST("/guests", h.guest.HandleCreateGuest)
		authed.POST("/guests/import", h.guest.HandleImportGuests)
		authed.GET("/guests", h.guest.HandleListGuests)
		authed.GET("/guests/:guestID", h.guest.HandleGetGuest)
		authed.PUT("/guests/:guestID", h.guest.HandleUpdateGuest)
		authed.DELETE("/guests/:guestID", h.guest.HandleDeleteGuest)
		authed.POST("/guest-groups", h.guest.HandleCreateGroup)
		authed.GET("/guest-groups", h.guest.HandleListGroups)

		authed.POST("/events", h.schedule.HandleCreateEvent)
		authed.GET("/events", h.schedule.HandleListEvents)
		authed.GET("/events/:eventID", h.schedule.HandleGetEvent)
		authed.PUT("/events/:eventID", h.schedule.HandleUpdateEvent)
		authed.DELETE("/events/:eventID", h.schedule.HandleDeleteEvent)
		authed.POST("/events/:eventID/publish", h.schedule.HandlePublishEvent)
		authed.POST("/activities", h.schedule.HandleCreateActivity)
		authed.GET("/activities", h.schedule.HandleListActivities)
		authed.GET("/activities/:activityID", h.schedule.HandleGetActivity)
		authed.PUT("/activities/:activityID", h.schedule.HandleUpdateActivity)
		authed.DELETE("/activities/:activityID", h.schedule.HandleDeleteActivity)
		authed.POST("/activities/:activityID/publish", h.schedule.HandlePublishActivity)

		authed.POST("/rsvps", h.rsvp.HandleSubmitRSVP)
		authed.GET("/rsvps", h.rsvp.HandleListRSVPs)
		authed.GET("/rsvps/:rsvpID", h.rsvp.HandleGetRSVP)
		authed.PUT("/rsvps/:rsvpID", h.rsvp.HandleUpdateRSVP)
		authed.DELETE("/rsvps/:rsvpID", h.rsvp.HandleDeleteRSVP)
		authed.GET("/activities/:activityID/capacity", h.rsvp.HandleGetActivityCapacity)
		authed.GET("/capacity-alerts", h.rsvp.HandleGetCapacityAlerts)

		authed.POST("/locations", h.location.HandleCreateLocation)
		authed.GET("/locations", h.location.HandleListLocations)
		authed.GET("/locations/tree", h.location.HandleGetLocationTree)
		authed.GET("/locations/:locationID", h.location.HandleGetLocation)
		authed.PUT("/locations/:locationID", h.location.HandleUpdateLocation)
		authed.DELETE("/locations/:locationID", h.location.HandleDeleteLocation)

		authed.POST("/accommodations", h.accommodation.HandleCreateAccommodation)
		authed.GET("/accommodations", h.accommodation.HandleListAccommodations)
		authed.GET("/accommodations/:accommodationID", h.accommodation.HandleGetAccommodation)
		authed.PUT("/accommodations/:accommodationID", h.accommodation.HandleUpdateAccommodation)
		authed.DELETE("/accommodations/:accommodationID", h.accommodation.HandleDeleteAccommodation)
		authed.POST("/accommodations/:accommodationID/room-types", h.accommodation.HandleCreateRoomType)
		authed.GET("/accommodations/:accommodationID/room-types", h.accommodation.HandleListRoomTypes)
		authed.PUT("/room-types/:roomTypeID", h.accommodation.HandleUpdateRoomType)
		authed.DELETE("/room-types/:roomTypeID", h.accommodation.HandleDeleteRoomType)
		authed.POST("/room-assignments", h.accommodation.HandleAssignRoom)
		authed.DELETE("/room-assignments/:assignmentID", h.accommodation.HandleUnassignRoom)
		authed.GET("/guests/:guestID/room-assignments", h.accommodation.HandleListGuestStays)

		authed.POST("/vendors", h.vendor.HandleCreateVendor)
		authed.GET("/vendors", h.vendor.HandleListVendors)
		authed.GET("/vendors/:vendorID", h.vendor.HandleGetVendor)
		authed.PUT("/vendors/:vendorID", h.vendor.HandleUpdateVendor)
		authed.DELETE("/vendors/:vendorID", h.vendor.HandleDeleteVendor)

		authed.POST("/pages", h.content.HandleCreatePage)
		authed.GET("/pages", h.content.HandleListPages)
		authed.GET("/pages/slug/:slug", h.content.HandleGetPageBySlug)
		authed.GET("/pages/:pageID", h.content.HandleGetPage)
		authed.PUT("/pages/:pageID", h.content.HandleUpdatePage)
		authed.DELETE("/pages/:pageID", h.content.HandleDeletePage)
		authed.POST("/sections", h.content.HandleCreateSection)
		authed.GET("/sections", h.content.HandleListSections)
		authed.PUT("/sections/:sectionID", h.content.HandleUpdateSection)
		authed.DELETE("/sections/:sectionID", h.content.HandleDeleteSection)
		authed.GET("/references/validate", h.content.HandleValidateReferences)

		authed.POST("/photos", h.photo.HandleUploadPhoto)
		authed.GET("/photos", h.photo.HandleListPhotos)
		authed.GET("/photos/:photoID", h.photo.HandleGetPhoto)
		authed.GET("/photos/:photoID/content", h.photo.HandleDownloadPhoto)
		authed.POST("/photos/:photoID/moderate", h.photo.HandleModeratePhoto)
		authed.DELETE("/photos/:photoID", h.photo.HandleDeletePhoto)

		authed.POST("/guests/:guestID/notify", h.notification.HandleEmailGuest)
		authed.POST("/notifications/group", h.notification.HandleEmailGroup)
		authed.GET("/notifications", h.notification.HandleNotificationHistory)

		authed.GET("/guests/:guestID/itinerary", h.itinerary.HandleGetItinerary)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Wedding Platform API"
	docs.SwaggerInfo.Description = "Administration API for a destination wedding portal."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
