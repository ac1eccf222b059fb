// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Routes messages between screens and runs API exchanges as commands

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pratiksef/pratiksef/internal/client"
	"github.com/pratiksef/pratiksef/internal/imagecache"
	"github.com/pratiksef/pratiksef/internal/recipe"
	"github.com/pratiksef/pratiksef/internal/session"
	"github.com/pratiksef/pratiksef/internal/tui/login"
	"github.com/pratiksef/pratiksef/internal/tui/myrecipes"
	"github.com/pratiksef/pratiksef/internal/tui/recipeview"
	"github.com/pratiksef/pratiksef/internal/tui/styles"
	"github.com/pratiksef/pratiksef/internal/tui/wizard"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenWizard
	ScreenGenerating
	ScreenRecipe
	ScreenMyRecipes
)

// codeRequestedMsg is sent when the request-code exchange finishes
type codeRequestedMsg struct {
	email string
	err   error
}

// verifiedMsg is sent when the verify-code exchange finishes
type verifiedMsg struct {
	err error
}

// recipeGeneratedMsg is sent when recipe generation finishes
type recipeGeneratedMsg struct {
	recipe *recipe.Recipe
	err    error
}

// recipeSavedMsg is sent when the save exchange finishes
type recipeSavedMsg struct {
	id  string
	err error
}

// recipeDeletedMsg is sent when the delete exchange finishes
type recipeDeletedMsg struct {
	id  string
	err error
}

// recipeLoadedMsg is sent when hydration by id finishes
type recipeLoadedMsg struct {
	recipe *recipe.Recipe
	err    error
}

// pageLoadedMsg is sent when a listing page arrives
type pageLoadedMsg struct {
	items   []recipe.Summary
	hasMore bool
	err     error
}

// imageFetchedMsg is sent when a recipe image landed in the disk cache
type imageFetchedMsg struct {
	url  string
	path string
}

// App is the root model for the TUI
type App struct {
	client  *client.Client
	session *session.Manager
	images  *imagecache.Cache
	screen  Screen
	width   int
	height  int

	// Last generation request, kept for the alternative flow.
	lastIngredients string
	lastMealTypeID  string

	spinner spinner.Model

	// Child models
	login      *login.Login
	wizard     *wizard.Wizard
	recipeView *recipeview.Model
	myRecipes  *myrecipes.Model
}

// New creates a new TUI application. The initial screen depends on whether
// a session was restored.
func New(apiClient *client.Client, sess *session.Manager) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	screen := ScreenLogin
	if sess.Authenticated() {
		screen = ScreenWizard
	}

	return &App{
		client:    apiClient,
		session:   sess,
		images:    imagecache.New(imagecache.DefaultDir()),
		screen:    screen,
		spinner:   sp,
		login:     login.New(),
		wizard:    wizard.New(),
		myRecipes: myrecipes.New(),
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	if a.screen == ScreenLogin {
		return a.login.Init()
	}
	return a.wizard.Init()
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// tab belongs to huh's field navigation, so the screen switch
		// uses ctrl+t.
		if msg.String() == "ctrl+t" && a.screen == ScreenWizard {
			return a, a.openMyRecipes()
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	// Login flow
	case login.EmailSubmittedMsg:
		return a, a.requestCodeCmd(msg.Email)

	case codeRequestedMsg:
		if msg.err != nil {
			return a, a.login.SetError(msg.err.Error())
		}
		return a, a.login.StartCodeEntry()

	case login.CodeSubmittedMsg:
		return a, a.verifyCmd(msg.Email, msg.Code)

	case verifiedMsg:
		if msg.err != nil {
			return a, a.login.SetError(msg.err.Error())
		}
		a.screen = ScreenWizard
		return a, a.wizard.Reset()

	// Generation flow
	case wizard.SubmittedMsg:
		a.lastIngredients = msg.Ingredients
		a.lastMealTypeID = msg.MealTypeID
		a.screen = ScreenGenerating
		return a, tea.Batch(a.spinner.Tick, a.generateCmd(msg.Ingredients, msg.MealTypeID, false))

	case recipeGeneratedMsg:
		if msg.err != nil {
			if a.handleAuthError(msg.err) {
				return a, a.login.Init()
			}
			a.screen = ScreenWizard
			return a, a.wizard.SetError(msg.err.Error())
		}
		a.screen = ScreenRecipe
		a.recipeView = recipeview.New(msg.recipe)
		return a, a.fetchImageCmd(msg.recipe.ImageURL)

	// Recipe detail flow
	case recipeview.SaveMsg:
		a.recipeView.SetBusy(true)
		return a, a.saveCmd(a.recipeView.Recipe())

	case recipeSavedMsg:
		if msg.err != nil {
			if a.handleAuthError(msg.err) {
				return a, a.login.Init()
			}
			a.recipeView.SetError(msg.err.Error())
			return a, nil
		}
		a.recipeView.SetBusy(false)
		return a, nil

	case recipeview.DeleteMsg:
		a.recipeView.SetBusy(true)
		return a, a.deleteCmd(a.recipeView.Recipe().SavedID)

	case recipeview.AlternativeMsg:
		ingredients := a.lastIngredients
		mealTypeID := a.lastMealTypeID
		if r := a.recipeView.Recipe(); ingredients == "" && r != nil {
			// Opened from the listing: rebuild the request from the recipe.
			ingredients = r.IngredientsLine()
			mealTypeID = recipe.MealTypeIDForTitle(r.MealType)
		}
		a.screen = ScreenGenerating
		return a, tea.Batch(a.spinner.Tick, a.generateCmd(ingredients, mealTypeID, true))

	case recipeview.BackMsg:
		a.screen = ScreenWizard
		return a, a.wizard.Reset()

	// Listing flow
	case myrecipes.LoadMoreMsg:
		if a.myRecipes.Loading() {
			return a, nil
		}
		a.myRecipes.SetLoading()
		return a, a.loadPageCmd(len(a.myRecipes.Items()))

	case pageLoadedMsg:
		if msg.err != nil {
			if a.handleAuthError(msg.err) {
				return a, a.login.Init()
			}
			a.myRecipes.SetError(msg.err.Error())
			return a, nil
		}
		a.myRecipes.SetPage(msg.items, msg.hasMore)
		return a, a.prefetchCmd(msg.items)

	case myrecipes.OpenMsg:
		return a, a.getRecipeCmd(msg.ID)

	case recipeLoadedMsg:
		if msg.err != nil {
			if a.handleAuthError(msg.err) {
				return a, a.login.Init()
			}
			a.myRecipes.SetError(msg.err.Error())
			return a, nil
		}
		a.screen = ScreenRecipe
		a.recipeView = recipeview.New(msg.recipe)
		// Opened from the listing: an alternative must come from this
		// recipe's own ingredients, not earlier wizard input.
		a.lastIngredients = ""
		a.lastMealTypeID = ""
		return a, a.fetchImageCmd(msg.recipe.ImageURL)

	case myrecipes.DeleteMsg:
		return a, a.deleteCmd(msg.ID)

	case recipeDeletedMsg:
		if msg.err != nil {
			if a.handleAuthError(msg.err) {
				return a, a.login.Init()
			}
			if a.screen == ScreenRecipe {
				a.recipeView.SetError(msg.err.Error())
			} else {
				a.myRecipes.SetError(msg.err.Error())
			}
			return a, nil
		}
		a.myRecipes.Remove(msg.id)
		if a.screen == ScreenRecipe {
			a.screen = ScreenWizard
			return a, a.wizard.Reset()
		}
		return a, nil

	case myrecipes.BackMsg:
		a.screen = ScreenWizard
		return a, a.wizard.Reset()

	case imageFetchedMsg:
		if a.recipeView != nil && a.recipeView.Recipe().ImageURL == msg.url {
			a.recipeView.SetImagePath(msg.path)
		}
		return a, nil
	}

	return a, a.routeToChild(msg)
}

// routeToChild forwards a message to the active screen's model.
func (a *App) routeToChild(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.screen {
	case ScreenLogin:
		_, cmd = a.login.Update(msg)
	case ScreenWizard:
		_, cmd = a.wizard.Update(msg)
	case ScreenRecipe:
		if a.recipeView != nil {
			_, cmd = a.recipeView.Update(msg)
		}
	case ScreenMyRecipes:
		_, cmd = a.myRecipes.Update(msg)
	}
	return cmd
}

// handleAuthError routes an expired session to the login screen. The client
// has already cleared the session when this fires.
func (a *App) handleAuthError(err error) bool {
	if !client.IsKind(err, client.KindAuthentication) {
		return false
	}
	a.screen = ScreenLogin
	a.login = login.New()
	a.login.SetError(err.Error())
	return true
}

// openMyRecipes switches to the listing and starts a fresh first page, the
// same reload-on-focus behavior the mobile listing had.
func (a *App) openMyRecipes() tea.Cmd {
	a.screen = ScreenMyRecipes
	a.myRecipes.Reset()
	a.myRecipes.SetLoading()
	return a.loadPageCmd(0)
}

func (a *App) requestCodeCmd(email string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), client.LoginTimeout)
		defer cancel()
		err := a.client.RequestCode(ctx, email)
		return codeRequestedMsg{email: email, err: err}
	}
}

func (a *App) verifyCmd(email, code string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), client.LoginTimeout)
		defer cancel()
		err := a.client.VerifyCode(ctx, email, code)
		return verifiedMsg{err: err}
	}
}

func (a *App) generateCmd(ingredients, mealTypeID string, alternative bool) tea.Cmd {
	return func() tea.Msg {
		r, err := a.client.GenerateRecipe(context.Background(), ingredients, mealTypeID, alternative)
		return recipeGeneratedMsg{recipe: r, err: err}
	}
}

func (a *App) saveCmd(r *recipe.Recipe) tea.Cmd {
	return func() tea.Msg {
		id, err := a.client.SaveRecipe(context.Background(), r)
		return recipeSavedMsg{id: id, err: err}
	}
}

func (a *App) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		err := a.client.DeleteRecipe(context.Background(), id)
		return recipeDeletedMsg{id: id, err: err}
	}
}

func (a *App) getRecipeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		r, err := a.client.GetRecipe(context.Background(), id)
		return recipeLoadedMsg{recipe: r, err: err}
	}
}

func (a *App) loadPageCmd(skip int) tea.Cmd {
	return func() tea.Msg {
		items, hasMore, err := a.client.ListSavedRecipes(context.Background(), skip, client.DefaultPageSize)
		return pageLoadedMsg{items: items, hasMore: hasMore, err: err}
	}
}

// fetchImageCmd warms the image cache for the detail view.
func (a *App) fetchImageCmd(url string) tea.Cmd {
	if url == "" {
		return nil
	}
	return func() tea.Msg {
		path, err := a.images.Fetch(context.Background(), url)
		if err != nil {
			// Cosmetic; the view renders without an image.
			return imageFetchedMsg{url: url}
		}
		return imageFetchedMsg{url: url, path: path}
	}
}

// prefetchCmd warms the image cache for a listing page in the background.
func (a *App) prefetchCmd(items []recipe.Summary) tea.Cmd {
	urls := make([]string, 0, len(items))
	for _, item := range items {
		if item.ImageURL != "" {
			urls = append(urls, item.ImageURL)
		}
	}
	if len(urls) == 0 {
		return nil
	}
	return func() tea.Msg {
		a.images.Prefetch(context.Background(), urls)
		return nil
	}
}

// View implements tea.Model
func (a *App) View() string {
	var content string
	switch a.screen {
	case ScreenLogin:
		content = a.login.View()
	case ScreenWizard:
		content = a.wizard.View()
	case ScreenGenerating:
		content = fmt.Sprintf("%s Şefimiz sizin için şu an tarifi hazırlıyor…", a.spinner.View())
	case ScreenRecipe:
		if a.recipeView != nil {
			content = a.recipeView.View()
		}
	case ScreenMyRecipes:
		content = a.myRecipes.View()
	}

	header := a.headerView()
	if header == "" {
		return content
	}
	return header + "\n" + content
}

// headerView shows the signed-in user outside the login screen.
func (a *App) headerView() string {
	if a.screen == ScreenLogin {
		return ""
	}
	user, ok := a.session.User()
	if !ok {
		return ""
	}
	return styles.Subtitle.Render(strings.TrimSpace("Pratik Şef · " + user.Email))
}

// Run starts the TUI event loop.
func Run(apiClient *client.Client, sess *session.Manager) error {
	app := New(apiClient, sess)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
