// orderctl 终端下单客户端：经销商/产品搜索、尺码数量矩阵录入、
// 提交订单并输出可分享的摘要消息
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/varteks/matrixorder/internal/config"
	"github.com/varteks/matrixorder/internal/draft"
)

func main() {
	// .env 不存在时直接使用环境变量
	_ = godotenv.Load()

	client := &apiClient{
		baseURL: config.GetEnvOrDefault("MATRIXORDER_API", "http://localhost:8080"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}

	in := bufio.NewScanner(os.Stdin)
	d := draft.New()

	fmt.Println("matrixorder order entry")

	dealer, ok := pickOption(in, "Dealer", client.searchDealers, nil)
	if !ok {
		return
	}
	d.BindDealer(dealer)

	row := 0
	for {
		product, ok := pickOption(in, "Product", client.searchProducts, d.BoundProductIDs())
		if !ok {
			break
		}
		d.BindProduct(row, product)

		skus, err := client.skus(product.ID)
		if err != nil {
			fmt.Printf("failed to load sizes: %v\n", err)
		}
		for _, sku := range skus {
			fmt.Printf("  qty for size %s (enter to skip): ", sku.SizeLabel)
			if !in.Scan() {
				break
			}
			d.SetQuantity(row, sku.SizeLabel, in.Text())
		}

		fmt.Print("add another product? [y/N]: ")
		if !in.Scan() || !strings.EqualFold(strings.TrimSpace(in.Text()), "y") {
			break
		}
		d.AddRow()
		row++
	}

	sub, err := d.Submission()
	if err != nil {
		fmt.Println(err)
		return
	}

	orderID, err := client.submit(sub)
	if err != nil {
		// 提交失败保留草稿，这里直接退出由用户重试
		fmt.Printf("submission failed: %v\n", err)
		return
	}
	fmt.Printf("order saved: %s\n", orderID)
	d.Reset()

	share, err := client.share(orderID)
	if err != nil {
		return
	}
	fmt.Println("\n" + share.Message)
	fmt.Println("\nsend via WhatsApp: " + share.Link)
	if share.GroupLink != "" {
		fmt.Println("group: " + share.GroupLink)
	}
}

// pickOption 搜索并选择一个候选项。exclude中的ID显示为已选，不可再选
func pickOption(in *bufio.Scanner, label string, search func(string) []draft.Option, exclude map[string]bool) (draft.Option, bool) {
	// 与录入表单同一条防抖搜索流；结果经由通道送回提示循环。
	// 行缓冲输入下防抖期可以很短
	results := make(chan []draft.Option, 1)
	ta := draft.NewTypeahead(
		func(_ context.Context, query string) ([]draft.Option, error) {
			return search(query), nil
		},
		func(options []draft.Option) { results <- options },
		10*time.Millisecond,
	)
	defer ta.Close()

	for {
		fmt.Printf("%s search (min 3 chars, empty to stop): ", label)
		if !in.Scan() {
			return draft.Option{}, false
		}
		query := strings.TrimSpace(in.Text())
		if query == "" {
			return draft.Option{}, false
		}

		ta.Update(query)
		var options []draft.Option
		select {
		case options = <-results:
		case <-time.After(5 * time.Second):
			continue
		}
		if len(options) == 0 {
			fmt.Println("no matches")
			continue
		}
		for i, opt := range options {
			marker := ""
			if exclude[opt.ID] {
				marker = " (already selected)"
			}
			fmt.Printf("  [%d] %s%s\n", i+1, opt.Name, marker)
		}
		fmt.Print("pick: ")
		if !in.Scan() {
			return draft.Option{}, false
		}
		idx, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err != nil || idx < 1 || idx > len(options) {
			continue
		}
		picked := options[idx-1]
		if exclude[picked.ID] {
			fmt.Println("already selected, pick another")
			continue
		}
		return picked, true
	}
}

type apiClient struct {
	baseURL string
	http    *http.Client
}

type namedItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	BaseName string `json:"base_name"`
}

type skuItem struct {
	ID        string `json:"id"`
	SizeLabel string `json:"size_label"`
	FullName  string `json:"full_name"`
}

type shareMessage struct {
	Message   string `json:"message"`
	Link      string `json:"link"`
	GroupLink string `json:"group_link"`
}

func (c *apiClient) searchDealers(query string) []draft.Option {
	return c.searchOptions("/api/v1/dealers/search", query)
}

func (c *apiClient) searchProducts(query string) []draft.Option {
	return c.searchOptions("/api/v1/products/search", query)
}

// searchOptions 搜索失败静默降级为空结果
func (c *apiClient) searchOptions(path, query string) []draft.Option {
	var payload struct {
		Items []namedItem `json:"items"`
	}
	if err := c.getJSON(path+"?q="+url.QueryEscape(query), &payload); err != nil {
		return nil
	}
	options := make([]draft.Option, 0, len(payload.Items))
	for _, item := range payload.Items {
		name := item.Name
		if name == "" {
			name = item.BaseName
		}
		options = append(options, draft.Option{ID: item.ID, Name: name})
	}
	return options
}

func (c *apiClient) skus(baseID string) ([]skuItem, error) {
	var payload struct {
		Items []skuItem `json:"items"`
	}
	err := c.getJSON("/api/v1/products/"+baseID+"/skus", &payload)
	return payload.Items, err
}

func (c *apiClient) submit(sub draft.Submission) (string, error) {
	body := map[string]interface{}{
		"dealer_id": sub.DealerID,
	}
	items := make([]map[string]interface{}, 0, len(sub.Items))
	for _, item := range sub.Items {
		items = append(items, map[string]interface{}{
			"base_id":    item.BaseID,
			"quantities": item.Quantities,
		})
	}
	body["items"] = items

	buf, _ := json.Marshal(body)
	resp, err := c.http.Post(c.baseURL+"/api/v1/orders", "application/json", bytes.NewReader(buf))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var result struct {
		OrderID string `json:"order_id"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s", result.Error)
	}
	return result.OrderID, nil
}

func (c *apiClient) share(orderID string) (*shareMessage, error) {
	var msg shareMessage
	if err := c.getJSON("/api/v1/orders/"+orderID+"/share", &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *apiClient) getJSON(path string, dest interface{}) error {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
