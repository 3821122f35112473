// Package client holds the single-user view state of the marketplace UI:
// which screen is active, who is logged in, which product is selected, and
// the browse filters. All transitions are synchronous; there is no
// background work and no push from the server.
package client

import (
	"github.com/varsitymarket/varsity-market-backend/internal/catalog"
	"github.com/varsitymarket/varsity-market-backend/internal/models"
)

// View identifies a screen.
type View string

const (
	ViewLanding       View = "landing"
	ViewBrowse        View = "browse"
	ViewDashboard     View = "dashboard"
	ViewMessages      View = "messages"
	ViewSettings      View = "settings"
	ViewCreateListing View = "createListing"
	ViewEditListing   View = "editListing"
	ViewProductDetail View = "productDetail"
	ViewAdmin         View = "admin"
)

// PendingKind tags the action deferred until login completes.
type PendingKind int

const (
	PendingNone PendingKind = iota
	PendingNavigate
)

// PendingAction is the navigation request stored while the login prompt is
// up. It is an explicit value rather than a captured callback so the replay
// happens exactly once and can be inspected.
type PendingAction struct {
	Kind   PendingKind
	Target View
}

// Controller is the single-process view state holder.
type Controller struct {
	view     View
	user     *models.User
	selected *models.Product
	editing  *models.Product
	pending  PendingAction

	criteria catalog.Criteria
	sortBy   catalog.SortOption
}

// NewController starts on the landing screen, logged out, with default
// browse filters.
func NewController() *Controller {
	return &Controller{
		view:     ViewLanding,
		criteria: catalog.DefaultCriteria(),
		sortBy:   catalog.SortNewest,
	}
}

func (c *Controller) View() View                       { return c.view }
func (c *Controller) CurrentUser() *models.User        { return c.user }
func (c *Controller) SelectedProduct() *models.Product { return c.selected }
func (c *Controller) EditingProduct() *models.Product  { return c.editing }
func (c *Controller) Pending() PendingAction           { return c.pending }

func requiresAuth(v View) bool {
	switch v {
	case ViewDashboard, ViewMessages, ViewCreateListing, ViewSettings:
		return true
	}
	return false
}

// Navigate requests a screen change. Navigating to browse clears any
// selected or edited product. An auth-gated target while logged out is
// deferred: the request is stored and the caller should prompt for login;
// Navigate returns false in that case.
func (c *Controller) Navigate(target View) bool {
	if target == ViewBrowse {
		c.selected = nil
		c.editing = nil
	}
	if requiresAuth(target) && c.user == nil {
		c.pending = PendingAction{Kind: PendingNavigate, Target: target}
		return false
	}
	c.view = target
	return true
}

// CompleteLogin records the authenticated user and replays the pending
// navigation, if any, exactly once.
func (c *Controller) CompleteLogin(user *models.User) {
	c.user = user
	if c.pending.Kind == PendingNavigate {
		target := c.pending.Target
		c.pending = PendingAction{}
		c.Navigate(target)
	}
}

// CancelLogin drops the pending action when the login prompt is dismissed.
func (c *Controller) CancelLogin() {
	c.pending = PendingAction{}
}

// Logout clears the session and any selected or edited product, and forces
// the browse screen.
func (c *Controller) Logout() {
	c.user = nil
	c.selected = nil
	c.editing = nil
	c.pending = PendingAction{}
	c.view = ViewBrowse
}

// SelectProduct opens the product detail screen for p.
func (c *Controller) SelectProduct(p *models.Product) {
	c.selected = p
	c.view = ViewProductDetail
}

// EditListing opens the edit screen carrying the product to edit.
func (c *Controller) EditListing(p *models.Product) {
	c.editing = p
	c.view = ViewEditListing
}

func (c *Controller) Criteria() catalog.Criteria      { return c.criteria }
func (c *Controller) SetCriteria(cr catalog.Criteria) { c.criteria = cr }
func (c *Controller) Sort() catalog.SortOption        { return c.sortBy }
func (c *Controller) SetSort(s catalog.SortOption)    { c.sortBy = s }

// ResetFilters restores the four filter fields to their defaults. The sort
// order is kept.
func (c *Controller) ResetFilters() {
	c.criteria = catalog.DefaultCriteria()
}

// VisibleProducts runs the browse filters over the catalog.
func (c *Controller) VisibleProducts(products []models.Product) []models.Product {
	return catalog.Apply(products, c.criteria, c.sortBy)
}
