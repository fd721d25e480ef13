package handler

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/config"
	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/repository"
	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/workflow"
)

type Handler struct {
	validate     *validator.Validate
	config       *config.Config
	repository   *repository.Repository
	registration *workflow.RegistrationWorkflow
	swaps        *workflow.SwapWorkflow
	translator   ut.Translator
	mailChannel  *amqp.Channel
	redisClient  *redis.Client
	now          func() time.Time

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:     validate,
		config:       cfg,
		repository:   repo,
		registration: workflow.NewRegistrationWorkflow(repo, workflow.NewZoneAssigner(repo)),
		swaps:        workflow.NewSwapWorkflow(repo),
		translator:   trans,
		mailChannel:  mailCh,
		redisClient:  rdb,
		now:          time.Now,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// everything below requires a logged-in staff member
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
		})

		r.Route("/staffs", func(r chi.Router) {
			r.With(h.RequiredStaffType(domain.StaffTypeManager)).Post("/", h.CreateStaff)
			r.Get("/", h.GetAllStaffs)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.staffInfo)
				r.Get("/", h.GetStaffInfo)
				r.With(h.preventOperateInitialManager).With(h.RequiredStaffType(domain.StaffTypeManager)).Patch("/", h.UpdateStaffInfo)
			})
		})

		r.Get("/days", h.GetAllDays)

		r.Route("/shifts", func(r chi.Router) {
			r.With(h.RequiredStaffType(domain.StaffTypeManager)).Post("/", h.CreateShift)
			r.Get("/", h.GetAllShifts)
		})

		r.Route("/zones", func(r chi.Router) {
			r.With(h.RequiredStaffType(domain.StaffTypeManager)).Post("/", h.CreateZone)
			r.Get("/", h.GetAllZones)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.zone)
				r.With(h.RequiredStaffType(domain.StaffTypeManager)).Patch("/", h.UpdateZone)
			})
		})

		r.Route("/working-slots", func(r chi.Router) {
			r.With(h.RequiredStaffType(domain.StaffTypeManager)).Post("/", h.CreateWorkingSlot)
			r.Get("/", h.GetAllWorkingSlots)
			r.Get("/time-slots", h.GetTimeSlots)
			r.Get("/{id}", h.GetWorkingSlot)
		})

		r.Route("/configs", func(r chi.Router) {
			r.Use(h.RequiredStaffType(domain.StaffTypeManager))
			r.Get("/", h.GetAllConfigs)
			r.Get("/{key}", h.GetConfig)
			r.Put("/", h.UpsertConfig)
		})

		r.Route("/working-slot-registers", func(r chi.Router) {
			r.With(h.myInfo).Post("/", h.CreateWorkingSlotRegister)
			r.Get("/", h.GetAllWorkingSlotRegisters)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.register)
				r.Get("/", h.GetWorkingSlotRegister)
				r.Group(func(r chi.Router) {
					r.Use(h.RequiredStaffType(domain.StaffTypeManager))
					r.Post("/approve", h.ApproveWorkingSlotRegister)
					r.Post("/reject", h.RejectWorkingSlotRegister)
					r.Post("/zone", h.AssignRegisterZone)
				})
			})
		})

		r.Route("/staff-schedules", func(r chi.Router) {
			r.Get("/", h.GetStaffSchedules)
			r.With(h.RequiredStaffType(domain.StaffTypeManager)).Get("/export", h.ExportWeekSchedules)
			r.Get("/ical", h.GetStaffScheduleCalendarFeed)
		})

		r.Route("/swap-working-slot-requests", func(r chi.Router) {
			r.With(h.myInfo).Post("/", h.CreateSwapRequest)
			r.Get("/", h.GetAllSwapRequests)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.swapRequest)
				r.Get("/", h.GetSwapRequest)
				r.Group(func(r chi.Router) {
					r.Use(h.RequiredStaffType(domain.StaffTypeManager))
					r.Post("/approve", h.ApproveSwapRequest)
					r.Post("/reject", h.RejectSwapRequest)
				})
			})
		})

		r.Get("/schedule-calendar", h.GetScheduleCalendar)
	})
}
