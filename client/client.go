// Package client is a typed HTTP client for the expense tracker API. It
// injects the bearer token captured at login on every authenticated call.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/priyanshu-0911/zenith-expense-tracker/models"
)

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	Status int
	Msg    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Msg)
}

// Client talks to one server on behalf of one user.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New returns a client for the given base URL, e.g. "http://localhost:5000".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken installs a previously saved session token.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the current session token, empty before login.
func (c *Client) Token() string { return c.token }

func (c *Client) do(method, path string, body, out any) error {
	var reqBody *bytes.Buffer = &bytes.Buffer{}
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody struct {
			Msg string `json:"msg"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		return &APIError{Status: resp.StatusCode, Msg: errBody.Msg}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// AuthResponse is returned by Register and Login.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Register creates an account and keeps the issued token for later calls.
func (c *Client) Register(username, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.do(http.MethodPost, "/api/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

// Login authenticates and keeps the issued token for later calls.
func (c *Client) Login(email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

// CurrentUser fetches the logged-in user's profile.
func (c *Client) CurrentUser() (*models.User, error) {
	var user models.User
	if err := c.do(http.MethodGet, "/api/auth", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword rotates the logged-in user's password.
func (c *Client) ChangePassword(current, newPw, confirm string) error {
	return c.do(http.MethodPut, "/api/users/change-password", map[string]string{
		"currentPassword":    current,
		"newPassword":        newPw,
		"confirmNewPassword": confirm,
	}, nil)
}

// ReceiptInput is the create/update payload for a receipt.
type ReceiptInput struct {
	Title           string          `json:"title"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category,omitempty"`
	TransactionDate string          `json:"transaction_date"`
	FundID          *int            `json:"fund_id,omitempty"`
}

func (c *Client) Receipts() ([]models.Receipt, error) {
	var receipts []models.Receipt
	if err := c.do(http.MethodGet, "/api/receipts", nil, &receipts); err != nil {
		return nil, err
	}
	return receipts, nil
}

func (c *Client) CreateReceipt(in ReceiptInput) (*models.Receipt, error) {
	var receipt models.Receipt
	if err := c.do(http.MethodPost, "/api/receipts", in, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (c *Client) UpdateReceipt(id int, in ReceiptInput) (*models.Receipt, error) {
	var receipt models.Receipt
	if err := c.do(http.MethodPut, "/api/receipts/"+strconv.Itoa(id), in, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (c *Client) DeleteReceipt(id int) error {
	return c.do(http.MethodDelete, "/api/receipts/"+strconv.Itoa(id), nil, nil)
}

func (c *Client) Categories() ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(http.MethodGet, "/api/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CreateCategory(name string) (*models.Category, error) {
	var category models.Category
	err := c.do(http.MethodPost, "/api/categories", map[string]string{"name": name}, &category)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) UpdateCategory(id int, name string) (*models.Category, error) {
	var category models.Category
	err := c.do(http.MethodPut, "/api/categories/"+strconv.Itoa(id), map[string]string{"name": name}, &category)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) DeleteCategory(id int) error {
	return c.do(http.MethodDelete, "/api/categories/"+strconv.Itoa(id), nil, nil)
}

// BudgetInput is the create payload for a budget.
type BudgetInput struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Month    int             `json:"month"`
	Year     int             `json:"year"`
	FundID   *int            `json:"fund_id,omitempty"`
}

func (c *Client) Budgets(month, year int) ([]models.BudgetWithSpending, error) {
	q := url.Values{}
	q.Set("month", strconv.Itoa(month))
	q.Set("year", strconv.Itoa(year))

	var budgets []models.BudgetWithSpending
	if err := c.do(http.MethodGet, "/api/budgets?"+q.Encode(), nil, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

func (c *Client) CreateBudget(in BudgetInput) (*models.Budget, error) {
	var budget models.Budget
	if err := c.do(http.MethodPost, "/api/budgets", in, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (c *Client) DeleteBudget(id int) error {
	return c.do(http.MethodDelete, "/api/budgets/"+strconv.Itoa(id), nil, nil)
}

// GoalInput is the create payload for a goal.
type GoalInput struct {
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	TargetDate   string          `json:"target_date,omitempty"`
}

func (c *Client) Goals() ([]models.Goal, error) {
	var goals []models.Goal
	if err := c.do(http.MethodGet, "/api/goals", nil, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (c *Client) CreateGoal(in GoalInput) (*models.Goal, error) {
	var goal models.Goal
	if err := c.do(http.MethodPost, "/api/goals", in, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (c *Client) AddSavings(goalID int, amount decimal.Decimal) (*models.Goal, error) {
	var goal models.Goal
	err := c.do(http.MethodPut, "/api/goals/"+strconv.Itoa(goalID)+"/add-savings",
		map[string]decimal.Decimal{"amount": amount}, &goal)
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// FundInput is the create payload for a fund.
type FundInput struct {
	Name   string `json:"name"`
	GoalID *int   `json:"goal_id,omitempty"`
}

func (c *Client) Funds() ([]models.FundSummary, error) {
	var funds []models.FundSummary
	if err := c.do(http.MethodGet, "/api/funds", nil, &funds); err != nil {
		return nil, err
	}
	return funds, nil
}

func (c *Client) CreateFund(in FundInput) (*models.Fund, error) {
	var fund models.Fund
	if err := c.do(http.MethodPost, "/api/funds", in, &fund); err != nil {
		return nil, err
	}
	return &fund, nil
}

func (c *Client) Fund(id int) (*models.FundDetail, error) {
	var fund models.FundDetail
	if err := c.do(http.MethodGet, "/api/funds/"+strconv.Itoa(id), nil, &fund); err != nil {
		return nil, err
	}
	return &fund, nil
}

// RecurringInput is the create/update payload for a recurring rule.
type RecurringInput struct {
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Frequency string          `json:"frequency"`
	StartDate string          `json:"start_date"`
}

func (c *Client) RecurringRules() ([]models.RecurringRule, error) {
	var rules []models.RecurringRule
	if err := c.do(http.MethodGet, "/api/recurring", nil, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

func (c *Client) CreateRecurringRule(in RecurringInput) (*models.RecurringRule, error) {
	var rule models.RecurringRule
	if err := c.do(http.MethodPost, "/api/recurring", in, &rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

func (c *Client) UpdateRecurringRule(id int, in RecurringInput) (*models.RecurringRule, error) {
	var rule models.RecurringRule
	if err := c.do(http.MethodPut, "/api/recurring/"+strconv.Itoa(id), in, &rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

func (c *Client) DeleteRecurringRule(id int) error {
	return c.do(http.MethodDelete, "/api/recurring/"+strconv.Itoa(id), nil, nil)
}
