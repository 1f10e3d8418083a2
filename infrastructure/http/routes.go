package http

import (
	"net/http"

	adminusers "slipdesk/frontend/adminUsers"
	"slipdesk/frontend/campaign"
	"slipdesk/frontend/invoice"
	"slipdesk/frontend/login"
	"slipdesk/frontend/manifest"
	"slipdesk/frontend/orders"
	"slipdesk/frontend/settings"
	"slipdesk/frontend/slips"
	"slipdesk/frontend/tracking"
	"slipdesk/infrastructure/rbac"

	"github.com/go-chi/chi/v5"
)

// RegisterLoginRoutes registers login/logout routes.
func (s *Server) RegisterLoginRoutes() {
	s.router.Get("/login", login.GetLoginScreenHandler)
	s.router.Post("/login", login.CreateLoginHandler(s.DB, s.SessionCache, s.UserCache))
	s.router.Post("/logout", login.LogoutHandler(s.DB, s.SessionCache))
}

// RegisterAdminRoutes registers admin-only routes.
func (s *Server) RegisterAdminRoutes(r chi.Router) chi.Router {
	s.Rbac.Add(rbac.RoleAdmin, "SETTINGS_VIEW", http.MethodGet, "/desk/settings")
	r.Get("/settings", settings.SettingsPageHandler(s.DB))
	s.Rbac.Add(rbac.RoleAdmin, "SETTINGS_EDIT", http.MethodPost, "/desk/settings")
	r.Post("/settings", settings.SettingsUpdateHandler(s.DB))

	s.Rbac.Add(rbac.RoleAdmin, "ADMIN_USERS_LIST_VIEW", http.MethodGet, "/desk/admin/users")
	r.Get("/admin/users", adminusers.UsersPageQueryHandler(s.DB))
	s.Rbac.Add(rbac.RoleAdmin, "ADMIN_USERS_CREATE", http.MethodPost, "/desk/admin/users")
	r.Post("/admin/users", adminusers.CreateUserCommandHandler(s.DB))
	return r
}

// RegisterFrontendRoutes registers authenticated routes.
func (s *Server) RegisterFrontendRoutes(r chi.Router) chi.Router {
	s.RegisterOrderRoutes(r)
	s.RegisterSlipRoutes(r)
	s.RegisterManifestRoutes(r)
	s.RegisterTrackingRoutes(r)

	s.Rbac.Add(rbac.RoleStaff, "CAMPAIGN_VIEW", http.MethodGet, "/desk/campaign")
	r.Get("/campaign", campaign.GetCampaignScreenHandler)
	s.Rbac.Add(rbac.RoleStaff, "CAMPAIGN_LOOKUP", http.MethodPost, "/desk/campaign")
	r.Post("/campaign", campaign.LookupCustomerHandler(s.Webhook))

	s.Rbac.Add(rbac.RoleStaff, "INVOICE_VIEW", http.MethodGet, "/desk/invoice")
	r.Get("/invoice", invoice.GetInvoiceScreenHandler)
	s.Rbac.Add(rbac.RoleStaff, "INVOICE_PDF", http.MethodPost, "/desk/invoice/pdf")
	r.Post("/invoice/pdf", invoice.BuildInvoicePDFHandler(s.DB))

	return r
}

func (s *Server) RegisterOrderRoutes(r chi.Router) {
	s.Rbac.Add(rbac.RoleStaff, "ORDERS_LIST_VIEW", http.MethodGet, "/desk/orders")
	r.Get("/orders", orders.GetOrdersScreenHandler(s.DB))

	s.Rbac.Add(rbac.RoleStaff, "ORDERS_CREATE", http.MethodPost, "/desk/orders")
	r.Post("/orders", orders.CreateOrderHandler(s.DB, s.Audit))

	s.Rbac.Add(rbac.RoleStaff, "ORDERS_EXTRACT", http.MethodPost, "/desk/orders/extract")
	r.Post("/orders/extract", orders.ExtractOrderHandler(s.DB, s.Webhook))

	s.Rbac.Add(rbac.RoleStaff, "ORDERS_PRINT_SLIPS", http.MethodPost, "/desk/orders/print")
	r.Post("/orders/print", orders.PrintOrderSlipsHandler(s.DB))

	s.Rbac.Add(rbac.RoleStaff, "ORDERS_SUBMIT", http.MethodPost, "/desk/orders/submit")
	r.Post("/orders/submit", orders.SubmitOrdersHandler(s.DB, s.Webhook))

	s.Rbac.Add(rbac.RoleStaff, "ORDERS_EDIT_VIEW", http.MethodGet, "/desk/orders/*")
	r.Get("/orders/{id}", orders.GetEditOrderScreenHandler(s.DB))

	s.Rbac.Add(rbac.RoleStaff, "ORDERS_UPDATE", http.MethodPost, "/desk/orders/*/update")
	r.Post("/orders/{id}/update", orders.UpdateOrderHandler(s.DB, s.Audit))

	s.Rbac.Add(rbac.RoleStaff, "ORDERS_NOTE_ADD", http.MethodPost, "/desk/orders/*/note")
	r.Post("/orders/{id}/note", orders.AddOrderNoteHandler(s.DB))

	s.Rbac.Add(rbac.RoleStaff, "ORDERS_DELETE", http.MethodPost, "/desk/orders/*/delete")
	r.Post("/orders/{id}/delete", orders.DeleteOrderHandler(s.DB, s.Audit))
}

func (s *Server) RegisterSlipRoutes(r chi.Router) {
	s.Rbac.Add(rbac.RoleStaff, "SLIPS_VIEW", http.MethodGet, "/desk/slips")
	r.Get("/slips", slips.GetSlipsScreenHandler)

	s.Rbac.Add(rbac.RoleStaff, "SLIPS_PDF", http.MethodPost, "/desk/slips/pdf")
	r.Post("/slips/pdf", slips.BuildSlipsPDFHandler(s.DB))
}

func (s *Server) RegisterManifestRoutes(r chi.Router) {
	s.Rbac.Add(rbac.RoleStaff, "MANIFEST_VIEW", http.MethodGet, "/desk/manifest")
	r.Get("/manifest", manifest.GetManifestScreenHandler(s.Manifest))

	s.Rbac.Add(rbac.RoleStaff, "MANIFEST_SCAN", http.MethodPost, "/desk/manifest/scan")
	r.Post("/manifest/scan", manifest.ScanHandler(s.DB, s.Manifest))

	s.Rbac.Add(rbac.RoleStaff, "MANIFEST_RESOLVE", http.MethodPost, "/desk/manifest/resolve")
	r.Post("/manifest/resolve", manifest.ResolveDuplicateHandler(s.DB, s.Manifest))

	s.Rbac.Add(rbac.RoleStaff, "MANIFEST_REMOVE", http.MethodPost, "/desk/manifest/remove")
	r.Post("/manifest/remove", manifest.RemoveEntryHandler(s.DB, s.Manifest))

	s.Rbac.Add(rbac.RoleStaff, "MANIFEST_REFERENCE_UPLOAD", http.MethodPost, "/desk/manifest/reference")
	r.Post("/manifest/reference", manifest.UploadReferenceHandler(s.DB, s.Manifest))

	s.Rbac.Add(rbac.RoleStaff, "MANIFEST_PRINT", http.MethodPost, "/desk/manifest/print")
	r.Post("/manifest/print", manifest.PrintManifestHandler(s.DB, s.Manifest))

	s.Rbac.Add(rbac.RoleStaff, "MANIFEST_EXPORT", http.MethodGet, "/desk/manifest/export")
	r.Get("/manifest/export", manifest.ExportManifestHandler(s.Manifest))
}

func (s *Server) RegisterTrackingRoutes(r chi.Router) {
	s.Rbac.Add(rbac.RoleStaff, "TRACKING_VIEW", http.MethodGet, "/desk/tracking")
	r.Get("/tracking", tracking.GetTrackingScreenHandler(s.DB))

	s.Rbac.Add(rbac.RoleStaff, "TRACKING_UPDATE", http.MethodPost, "/desk/tracking")
	r.Post("/tracking", tracking.UpdateTrackingHandler(s.DB, s.Webhook))

	s.Rbac.Add(rbac.RoleStaff, "TRACKING_CLEAR", http.MethodPost, "/desk/tracking/clear")
	r.Post("/tracking/clear", tracking.ClearTrackingHistoryHandler(s.DB))
}
