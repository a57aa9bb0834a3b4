package web

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/example/setlocale/internal/excel"
	"github.com/example/setlocale/internal/service"
	"github.com/example/setlocale/pkg/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// maxUploadSize caps import uploads at 8 MiB
const maxUploadSize = 8 << 20

// Handler renders the admin pages and dispatches form submissions to
// the services. Authentication is handled upstream; the author id
// arrives in the X-User-Id header and defaults to 1.
type Handler struct {
	words    *service.WordService
	users    *service.UserService
	apps     *service.AppService
	importer *excel.Importer
	tmpl     *template.Template
}

// NewHandler builds the admin page handler with all routes registered
func NewHandler(words *service.WordService, users *service.UserService,
	apps *service.AppService, importer *excel.Importer) (http.Handler, error) {

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %v", err)
	}

	h := &Handler{
		words:    words,
		users:    users,
		apps:     apps,
		importer: importer,
		tmpl:     tmpl,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", h.index)
	mux.HandleFunc("/words", h.wordList)
	mux.HandleFunc("/words/not-translated", h.notTranslated)
	mux.HandleFunc("/word", h.wordDetail)
	mux.HandleFunc("/word/new", h.newWord)
	mux.HandleFunc("/word/translate", h.translate)
	mux.HandleFunc("/word/tag", h.tag)
	mux.HandleFunc("/admin/users", h.userList)
	mux.HandleFunc("/admin/users/new", h.newTranslator)
	mux.HandleFunc("/admin/apps", h.appList)
	mux.HandleFunc("/admin/apps/new", h.newApp)
	mux.HandleFunc("/admin/import", h.importWords)
	return mux, nil
}

// currentUserID reads the authenticated user id set by the upstream
// auth layer
func currentUserID(r *http.Request) int64 {
	if id, err := strconv.ParseInt(r.Header.Get("X-User-Id"), 10, 64); err == nil && id > 0 {
		return id
	}
	return 1
}

// pageParam reads the requested page number, defaulting to 1
func pageParam(r *http.Request) int {
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		return page
	}
	return 1
}

func (h *Handler) render(w http.ResponseWriter, name string, data interface{}) {
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("failed to render %s: %v", name, err)
	}
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/admin/apps", http.StatusFound)
}

// wordListPage is the template data for the paged word views
type wordListPage struct {
	Title string
	Words *models.PagedList[models.Word]
}

func (h *Handler) wordList(w http.ResponseWriter, r *http.Request) {
	var (
		words *models.PagedList[models.Word]
		err   error
		title = "Words"
	)

	if author, parseErr := strconv.ParseInt(r.URL.Query().Get("author"), 10, 64); parseErr == nil {
		words, err = h.words.GetByUserID(author, pageParam(r))
		title = "Words by user"
	} else {
		words, err = h.words.GetWords(pageParam(r))
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if words == nil {
		http.NotFound(w, r)
		return
	}
	h.render(w, "words.html", wordListPage{Title: title, Words: words})
}

func (h *Handler) notTranslated(w http.ResponseWriter, r *http.Request) {
	words, err := h.words.GetNotTranslated(pageParam(r))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.render(w, "words.html", wordListPage{Title: "Not Translated", Words: words})
}

// wordPage is the template data for one word's detail view
type wordPage struct {
	Word      *models.Word
	Languages []models.Language
	Msg       string
}

func (h *Handler) wordDetail(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	word, err := h.words.GetByKey(key)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if word == nil {
		http.NotFound(w, r)
		return
	}
	h.render(w, "word.html", wordPage{
		Word:      word,
		Languages: models.Languages(),
		Msg:       r.URL.Query().Get("msg"),
	})
}

func (h *Handler) newWord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	key, err := h.words.Create(service.WordInput{
		Key:         r.FormValue("key"),
		Description: r.FormValue("description"),
		Tags:        r.FormValue("tags"),
		CreatedBy:   currentUserID(r),
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if key == "" {
		http.Redirect(w, r, "/words?msg=word+not+created", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/word?key="+key, http.StatusFound)
}

func (h *Handler) translate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	key := r.FormValue("key")
	ok, err := h.words.Translate(key, r.FormValue("language"), r.FormValue("translation"))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	msg := "translation saved"
	if !ok {
		msg = "translation not saved"
	}
	http.Redirect(w, r, "/word?key="+key+"&msg="+msg, http.StatusFound)
}

func (h *Handler) tag(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	key := r.FormValue("key")
	ok, err := h.words.Tag(key, r.FormValue("tag"))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	msg := "tag added"
	if !ok {
		msg = "tag not added"
	}
	http.Redirect(w, r, "/word?key="+key+"&msg="+msg, http.StatusFound)
}

// userListPage is the template data for the user list
type userListPage struct {
	RoleID int
	Users  *models.PagedList[models.User]
}

func (h *Handler) userList(w http.ResponseWriter, r *http.Request) {
	roleID, _ := strconv.Atoi(r.URL.Query().Get("id"))

	var users *models.PagedList[models.User]
	var err error
	if models.IsValidRole(roleID) {
		users, err = h.users.GetAllByRoleID(roleID, pageParam(r))
	} else {
		users, err = h.users.GetUsers(pageParam(r))
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.render(w, "users.html", userListPage{RoleID: roleID, Users: users})
}

func (h *Handler) newTranslator(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, "new_translator.html", nil)
		return
	}

	id, err := h.users.CreateTranslator(service.UserInput{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Language: r.FormValue("language"),
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if id == 0 {
		h.render(w, "new_translator.html", "translator not created")
		return
	}
	http.Redirect(w, r, "/admin/users", http.StatusFound)
}

// appListPage is the template data for the app list
type appListPage struct {
	Apps *models.PagedList[models.App]
}

func (h *Handler) appList(w http.ResponseWriter, r *http.Request) {
	apps, err := h.apps.GetApps(pageParam(r))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.render(w, "apps.html", appListPage{Apps: apps})
}

func (h *Handler) newApp(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	_, err := h.apps.Create(service.AppInput{
		Name:        r.FormValue("name"),
		URL:         r.FormValue("url"),
		Description: r.FormValue("description"),
		CreatedBy:   currentUserID(r),
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin/apps", http.StatusFound)
}

// importPage is the template data for the import form
type importPage struct {
	Msg string
}

func (h *Handler) importWords(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, "import.html", importPage{})
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.render(w, "import.html", importPage{Msg: "upload failed"})
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		h.render(w, "import.html", importPage{Msg: "upload failed"})
		return
	}
	defer file.Close()

	result, err := h.importer.Import(file, header.Filename, currentUserID(r))
	if err != nil {
		// validation failures carry a human-readable message
		h.render(w, "import.html", importPage{Msg: err.Error()})
		return
	}
	h.render(w, "import.html", importPage{Msg: result.Summary()})
}
