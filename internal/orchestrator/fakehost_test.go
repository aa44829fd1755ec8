package orchestrator

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	gh "github.com/google/go-github/v80/github"
	"github.com/onlook-dev/fixpack-pipeline/internal/github"
)

// fakeHost is an in-memory GitHub with branches, commits, pull requests,
// check runs and labels. Every call is counted.
type fakeHost struct {
	mu sync.Mutex

	owner, repo   string
	defaultBranch string

	commits  map[string]map[string]string
	branches map[string]string
	nextID   int

	prs    []*gh.PullRequest
	labels map[int][]string

	// checks returns the check runs reported for a commit on the n-th listing (1-based).
	checks func(sha string, n int) []*gh.CheckRun

	calls map[string]int
	// hooks run before a call is served; a non-nil error is returned instead.
	hooks map[string]func(ctx context.Context, call int) error
}

func newFakeHost(files map[string]string) *fakeHost {
	h := &fakeHost{
		owner:         "acme",
		repo:          "web",
		defaultBranch: "main",
		commits:       map[string]map[string]string{},
		branches:      map[string]string{},
		labels:        map[int][]string{},
		calls:         map[string]int{},
		hooks:         map[string]func(context.Context, int) error{},
	}
	h.branches["main"] = h.commit(files)
	return h
}

func (h *fakeHost) commit(files map[string]string) string {
	h.nextID++
	sha := fmt.Sprintf("commit-%03d", h.nextID)
	snapshot := make(map[string]string, len(files))
	for k, v := range files {
		snapshot[k] = v
	}
	h.commits[sha] = snapshot
	return sha
}

func blobSHA(content string) string {
	sum := sha1.Sum([]byte(content))
	return hex.EncodeToString(sum[:])
}

func notFoundErr() error {
	return &gh.ErrorResponse{Response: &http.Response{StatusCode: http.StatusNotFound}, Message: "Not Found"}
}

// enter counts the call and runs its hook. Callers must hold no lock.
func (h *fakeHost) enter(ctx context.Context, name string) error {
	h.mu.Lock()
	h.calls[name]++
	n := h.calls[name]
	hook := h.hooks[name]
	h.mu.Unlock()

	if hook != nil {
		return hook(ctx, n)
	}
	return ctx.Err()
}

func (h *fakeHost) count(name string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls[name]
}

func (h *fakeHost) hook(name string, fn func(ctx context.Context, call int) error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks[name] = fn
}

func (h *fakeHost) fileOn(branch, path string) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	content, ok := h.commits[h.branches[branch]][path]
	return content, ok
}

func (h *fakeHost) branchNames() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []string
	for name := range h.branches {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// forcePush moves branch to a fresh commit with the same files.
func (h *fakeHost) forcePush(branch string) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	sha := h.commit(h.commits[h.branches[branch]])
	h.branches[branch] = sha
	return sha
}

func (h *fakeHost) checkRepo(owner, repo string) error {
	if owner != h.owner || repo != h.repo {
		return notFoundErr()
	}
	return nil
}

func (h *fakeHost) GetRepository(ctx context.Context, owner, repo string) (*gh.Repository, error) {
	if err := h.enter(ctx, "GetRepository"); err != nil {
		return nil, err
	}
	if err := h.checkRepo(owner, repo); err != nil {
		return nil, err
	}
	return &gh.Repository{Name: gh.Ptr(repo), DefaultBranch: gh.Ptr(h.defaultBranch)}, nil
}

func (h *fakeHost) GetDefaultBranch(ctx context.Context, owner, repo string) (string, error) {
	if err := h.enter(ctx, "GetDefaultBranch"); err != nil {
		return "", err
	}
	if err := h.checkRepo(owner, repo); err != nil {
		return "", err
	}
	return h.defaultBranch, nil
}

func (h *fakeHost) GetBranch(ctx context.Context, owner, repo, branch string) (*gh.Reference, error) {
	if err := h.enter(ctx, "GetBranch"); err != nil {
		return nil, err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	sha, ok := h.branches[branch]
	if !ok {
		return nil, notFoundErr()
	}
	return &gh.Reference{Ref: gh.Ptr("refs/heads/" + branch), Object: &gh.GitObject{SHA: gh.Ptr(sha)}}, nil
}

func (h *fakeHost) CreateBranch(ctx context.Context, owner, repo, branchName, baseSHA string) error {
	if err := h.enter(ctx, "CreateBranch"); err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.branches[branchName]; ok {
		return &gh.ErrorResponse{Response: &http.Response{StatusCode: http.StatusUnprocessableEntity}, Message: "Reference already exists"}
	}
	if _, ok := h.commits[baseSHA]; !ok {
		return errors.New("unknown base sha")
	}
	h.branches[branchName] = baseSHA
	return nil
}

func (h *fakeHost) ResetBranch(ctx context.Context, owner, repo, branchName, sha string) error {
	if err := h.enter(ctx, "ResetBranch"); err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.branches[branchName]; !ok {
		return notFoundErr()
	}
	h.branches[branchName] = sha
	return nil
}

func (h *fakeHost) GetTree(ctx context.Context, owner, repo, sha string, recursive bool) (*gh.Tree, *gh.Response, error) {
	if err := h.enter(ctx, "GetTree"); err != nil {
		return nil, nil, err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	commit, ok := h.branches[sha]
	if !ok {
		commit = sha
	}
	files, ok := h.commits[commit]
	if !ok {
		return nil, nil, notFoundErr()
	}
	tree := &gh.Tree{SHA: gh.Ptr(commit), Truncated: gh.Ptr(false)}
	for path := range files {
		tree.Entries = append(tree.Entries, &gh.TreeEntry{Path: gh.Ptr(path), Type: gh.Ptr("blob")})
	}
	return tree, &gh.Response{}, nil
}

func (h *fakeHost) GetFileContent(ctx context.Context, owner, repo, path, ref string) (string, string, error) {
	if err := h.enter(ctx, "GetFileContent"); err != nil {
		return "", "", err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	content, ok := h.commits[h.branches[ref]][path]
	if !ok {
		return "", "", notFoundErr()
	}
	return content, blobSHA(content), nil
}

func (h *fakeHost) CreateOrUpdateFile(ctx context.Context, owner, repo, path, branch, message, content string, fileSHA *string) error {
	if err := h.enter(ctx, "CreateOrUpdateFile"); err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	head, ok := h.branches[branch]
	if !ok {
		return notFoundErr()
	}
	files := h.commits[head]
	if current, exists := files[path]; exists {
		if fileSHA == nil || *fileSHA != blobSHA(current) {
			return &gh.ErrorResponse{Response: &http.Response{StatusCode: http.StatusConflict}, Message: "sha mismatch"}
		}
	}
	next := make(map[string]string, len(files)+1)
	for k, v := range files {
		next[k] = v
	}
	next[path] = content
	h.branches[branch] = h.commit(next)
	return nil
}

func (h *fakeHost) ListPullRequests(ctx context.Context, owner, repo string, opts *gh.PullRequestListOptions) ([]*gh.PullRequest, error) {
	if err := h.enter(ctx, "ListPullRequests"); err != nil {
		return nil, err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []*gh.PullRequest
	for _, pr := range h.prs {
		if opts != nil && opts.Head != "" && owner+":"+pr.GetHead().GetRef() != opts.Head {
			continue
		}
		out = append(out, pr)
	}
	return out, nil
}

func (h *fakeHost) GetPullRequest(ctx context.Context, owner, repo string, number int) (*gh.PullRequest, error) {
	if err := h.enter(ctx, "GetPullRequest"); err != nil {
		return nil, err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, pr := range h.prs {
		if pr.GetNumber() == number {
			ref := pr.GetHead().GetRef()
			return &gh.PullRequest{
				Number:  pr.Number,
				HTMLURL: pr.HTMLURL,
				Head:    &gh.PullRequestBranch{Ref: gh.Ptr(ref), SHA: gh.Ptr(h.branches[ref])},
			}, nil
		}
	}
	return nil, notFoundErr()
}

func (h *fakeHost) CreatePullRequest(ctx context.Context, owner, repo, title, body, head, base string) (*gh.PullRequest, error) {
	if err := h.enter(ctx, "CreatePullRequest"); err != nil {
		return nil, err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	number := len(h.prs) + 1
	pr := &gh.PullRequest{
		Number:  gh.Ptr(number),
		Title:   gh.Ptr(title),
		Body:    gh.Ptr(body),
		HTMLURL: gh.Ptr(fmt.Sprintf("https://github.com/%s/%s/pull/%d", owner, repo, number)),
		Head:    &gh.PullRequestBranch{Ref: gh.Ptr(head)},
		Base:    &gh.PullRequestBranch{Ref: gh.Ptr(base)},
	}
	h.prs = append(h.prs, pr)
	return pr, nil
}

func (h *fakeHost) FindPullRequestByBranch(ctx context.Context, owner, repo, branchName string) (*gh.PullRequest, error) {
	prs, err := h.ListPullRequests(ctx, owner, repo, &gh.PullRequestListOptions{Head: owner + ":" + branchName, State: "open"})
	if err != nil || len(prs) == 0 {
		return nil, err
	}
	return prs[0], nil
}

func (h *fakeHost) ListCheckRuns(ctx context.Context, owner, repo, ref string) ([]*gh.CheckRun, error) {
	if err := h.enter(ctx, "ListCheckRuns"); err != nil {
		return nil, err
	}
	n := h.count("ListCheckRuns")
	if h.checks == nil {
		return nil, nil
	}
	return h.checks(ref, n), nil
}

func (h *fakeHost) ListLabels(ctx context.Context, owner, repo string, number int) ([]*gh.Label, error) {
	if err := h.enter(ctx, "ListLabels"); err != nil {
		return nil, err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []*gh.Label
	for _, name := range h.labels[number] {
		out = append(out, &gh.Label{Name: gh.Ptr(name)})
	}
	return out, nil
}

func (h *fakeHost) AddLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	if err := h.enter(ctx, "AddLabels"); err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.labels[number] = append(h.labels[number], labels...)
	return nil
}

func (h *fakeHost) prTitle(number int) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, pr := range h.prs {
		if pr.GetNumber() == number {
			return pr.GetTitle()
		}
	}
	return ""
}

func (h *fakeHost) hasLabel(number int, label string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, l := range h.labels[number] {
		if strings.EqualFold(l, label) {
			return true
		}
	}
	return false
}

type fakeConnector struct {
	client github.Client
	err    error
}

func (c fakeConnector) Connect(context.Context, string) (github.Client, error) {
	return c.client, c.err
}

var _ github.Client = (*fakeHost)(nil)

func checkRun(status, conclusion string) *gh.CheckRun {
	run := &gh.CheckRun{Name: gh.Ptr("ci"), Status: gh.Ptr(status)}
	if conclusion != "" {
		run.Conclusion = gh.Ptr(conclusion)
	}
	return run
}

func pending(string, int) []*gh.CheckRun { return []*gh.CheckRun{checkRun("in_progress", "")} }
func passing(string, int) []*gh.CheckRun { return []*gh.CheckRun{checkRun("completed", "success")} }
func failing(string, int) []*gh.CheckRun {
	return []*gh.CheckRun{checkRun("completed", "success"), checkRun("completed", "failure")}
}
