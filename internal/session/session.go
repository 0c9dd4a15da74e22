// Package session tracks who is logged in and which page is visible.
//
// All of it lives in a single Controller — no ambient globals for pages to
// poke at. Each transition (Login, Logout, Navigate) produces a new
// immutable State value, and the presentation layer re-renders from
// whatever State it was handed. Nothing else in the application holds
// navigation state.
//
// The Controller does NOT gate navigation — Navigate always succeeds, even
// to a protected page with nobody logged in. Each page decides at render
// time what to do about a missing user (Page.Protected says which pages
// care). That matches the product's behavior; a stricter controller would
// change what users see.
package session

import (
	"log/slog"

	"github.com/google/uuid"
)

// Page is one screen of the desktop interface, selected exclusively from
// this fixed set.
type Page int

const (
	PageLogin Page = iota
	PageSignup
	PageHome
	PageAbout
	PageContact
	PageCompose
	PageMyPosts
	PagePostDetail
	PageGallery
	PageCategoryTree
)

var pageNames = map[Page]string{
	PageLogin:        "login",
	PageSignup:       "signup",
	PageHome:         "home",
	PageAbout:        "about",
	PageContact:      "contact",
	PageCompose:      "compose",
	PageMyPosts:      "my-posts",
	PagePostDetail:   "post-detail",
	PageGallery:      "gallery",
	PageCategoryTree: "category-tree",
}

func (p Page) String() string {
	if name, ok := pageNames[p]; ok {
		return name
	}
	return "unknown"
}

// Protected reports whether the page expects a logged-in user. Informational
// only: Navigate never checks it, pages do.
func (p Page) Protected() bool {
	switch p {
	case PageLogin, PageSignup, PageAbout, PageContact:
		return false
	default:
		return true
	}
}

// CurrentUser is the logged-in identity as pages display it.
type CurrentUser struct {
	ID          int64
	DisplayName string
}

// Params carries per-page parameters across a navigation. Today that is
// just the selected post for the detail page and gallery drill-through.
type Params struct {
	PostID int64
}

// State is an immutable snapshot of the session: who is logged in, which
// page is active, and that page's parameters. Token identifies the login
// session; it is empty when nobody is logged in.
type State struct {
	User   *CurrentUser
	Page   Page
	Params Params
	Token  string
}

// LoggedIn reports whether the state has a current user.
func (s State) LoggedIn() bool {
	return s.User != nil
}

// Controller owns the session state. It is single-threaded by the
// application's contract — all transitions happen on the UI event loop —
// so it carries no lock.
type Controller struct {
	state  State
	logger *slog.Logger
}

// New returns a controller in the initial state: login page, nobody logged
// in.
func New(logger *slog.Logger) *Controller {
	return &Controller{
		state:  State{Page: PageLogin},
		logger: logger,
	}
}

// State returns the current snapshot.
func (c *Controller) State() State {
	return c.state
}

// Login records the authenticated user, mints a fresh session token and
// lands on the home page.
func (c *Controller) Login(userID int64, displayName string) State {
	c.state = State{
		User:  &CurrentUser{ID: userID, DisplayName: displayName},
		Page:  PageHome,
		Token: uuid.New().String(),
	}
	c.logger.Info("session started",
		slog.Int64("userId", userID),
		slog.String("page", c.state.Page.String()),
	)
	return c.state
}

// Logout clears the user and token and returns to the login page.
func (c *Controller) Logout() State {
	if c.state.User != nil {
		c.logger.Info("session ended", slog.Int64("userId", c.state.User.ID))
	}
	c.state = State{Page: PageLogin}
	return c.state
}

// Navigate switches the active page unconditionally, replacing the
// previous page's parameters with the given ones. The user and token are
// carried over.
func (c *Controller) Navigate(page Page, params Params) State {
	c.state = State{
		User:   c.state.User,
		Page:   page,
		Params: params,
		Token:  c.state.Token,
	}
	c.logger.Debug("navigated",
		slog.String("page", page.String()),
		slog.Int64("postId", params.PostID),
	)
	return c.state
}

// ShowPost is the drill-through helper: navigate to the detail page for one
// post.
func (c *Controller) ShowPost(postID int64) State {
	return c.Navigate(PagePostDetail, Params{PostID: postID})
}
