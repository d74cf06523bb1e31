package blogapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var (
	ErrConfigInvalid   = errors.New("blogapi config invalid")
	ErrRequestFailed   = errors.New("blogapi request failed")
	ErrResponseInvalid = errors.New("blogapi response invalid")
	ErrPostNotFound    = errors.New("blogapi post not found")
)

// 默认参数，与远端 API 的分页约定一致
const (
	DefaultTimeout    = 5 * time.Second
	DefaultFetchLimit = 100
)

// Config 外部内容源配置
type Config struct {
	BaseURL      string        // 网关地址，如 https://blog-post-project-api.vercel.app
	Timeout      time.Duration // 单次请求超时
	FetchLimit   int           // 全量拉取时的单页上限
	DemoFallback bool          // 远端不可用时回退内置示例数据
}

func (c *Config) normalize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.FetchLimit <= 0 {
		c.FetchLimit = DefaultFetchLimit
	}
}

// Post 远端文章的原始结构
type Post struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Content     string  `json:"content"`
	Author      string  `json:"author"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Image       *string `json:"image"`
	Likes       int64   `json:"likes"`
}

// ParsedDate 解析远端日期，格式异常时返回零值
func (p *Post) ParsedDate() time.Time {
	if p.Date == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if ts, err := time.Parse(layout, p.Date); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// Page 远端分页响应，裸数组响应时按单页处理
type Page struct {
	Posts       []Post `json:"posts"`
	CurrentPage int    `json:"currentPage"`
	TotalPages  int    `json:"totalPages"`
	TotalPosts  int    `json:"totalPosts"`
}

// FetchOptions 拉取条件
type FetchOptions struct {
	Page     int
	Limit    int
	Category string
	Keyword  string
}

// Client 外部内容源客户端
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient 创建客户端
func NewClient(cfg Config) (*Client, error) {
	cfg.normalize()
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base_url is required", ErrConfigInvalid)
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// FetchPosts 拉取一页文章
func (c *Client) FetchPosts(ctx context.Context, opts FetchOptions) (*Page, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = c.cfg.FetchLimit
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(opts.Page))
	params.Set("limit", strconv.Itoa(opts.Limit))
	if category := strings.TrimSpace(opts.Category); category != "" {
		params.Set("category", category)
	}
	if keyword := strings.TrimSpace(opts.Keyword); keyword != "" {
		params.Set("keyword", keyword)
	}

	body, err := c.getJSON(ctx, "/posts?"+params.Encode())
	if err != nil {
		if c.cfg.DemoFallback {
			return demoPage(opts), nil
		}
		return nil, err
	}

	page, err := decodePage(body)
	if err != nil {
		if c.cfg.DemoFallback {
			return demoPage(opts), nil
		}
		return nil, err
	}
	if page.CurrentPage == 0 {
		page.CurrentPage = opts.Page
	}
	if page.TotalPosts == 0 {
		page.TotalPosts = len(page.Posts)
	}
	if page.TotalPages == 0 {
		page.TotalPages = ceilDiv(page.TotalPosts, opts.Limit)
	}
	return page, nil
}

// FetchAllPosts 按配置上限拉取全量文章，供聚合层合并
func (c *Client) FetchAllPosts(ctx context.Context) ([]Post, bool, error) {
	page, err := c.FetchPosts(ctx, FetchOptions{Page: 1, Limit: c.cfg.FetchLimit})
	if err != nil {
		return nil, false, err
	}
	// 超过单页上限时远端还有剩余数据，由调用方决定是否记录截断
	truncated := page.TotalPages > 1 || page.TotalPosts > len(page.Posts)
	return page.Posts, truncated, nil
}

// FetchPost 按 ID 拉取单篇文章
func (c *Client) FetchPost(ctx context.Context, id int64) (*Post, error) {
	body, err := c.getJSON(ctx, fmt.Sprintf("/posts/%d", id))
	if err != nil {
		if c.cfg.DemoFallback {
			if post := demoPost(id); post != nil {
				return post, nil
			}
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	var post Post
	if err := json.Unmarshal(body, &post); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	if post.ID == 0 {
		return nil, ErrPostNotFound
	}
	return &post, nil
}

func (c *Client) getJSON(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrPostNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: http status %d", ErrRequestFailed, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// decodePage 兼容 {posts: [...]} 与裸数组两种响应
func decodePage(body []byte) (*Page, error) {
	var page Page
	if err := json.Unmarshal(body, &page); err == nil && page.Posts != nil {
		return &page, nil
	}
	var posts []Post
	if err := json.Unmarshal(body, &posts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	return &Page{Posts: posts}, nil
}

func ceilDiv(total, size int) int {
	if size <= 0 {
		return 0
	}
	pages := total / size
	if total%size != 0 {
		pages++
	}
	return pages
}
