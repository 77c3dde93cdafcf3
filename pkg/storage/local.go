package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"Minimart/pkg/log"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"
)

// 持久化命名空间，沿用原浏览器端的存储键
const (
	NsCatalog        = "supermarket_categories"
	NsDiscounts      = "supermarket_discount_products"
	NsMembers        = "supermarket_members"
	NsMemberProducts = "supermarket_member_products"
	NsCurrentMember  = "supermarket_current_member"
	NsDeliveries     = "supermarket_deliveries"
	NsSales          = "supermarket_sales_records"
)

// Gateway 持久化网关。各存储区独立存取：单个命名空间损坏只影响自身，
// 调用方按命名空间降级到默认值
type Gateway interface {
	Save(ns string, v any) error
	// Load 反序列化命名空间内容到 out；命名空间不存在返回 (false, nil)，
	// 内容损坏返回 (false, err)
	Load(ns string, out any) (bool, error)
}

// LocalStore 单文件 JSON 文档存储，命名空间即文档顶层键
type LocalStore struct {
	path string
	doc  []byte
}

var _ Gateway = (*LocalStore)(nil)

func NewLocalStore(path string) *LocalStore {
	s := &LocalStore{path: path, doc: []byte("{}")}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.L.Warn("读取存储文件失败，使用空文档", zap.String("path", path), zap.Error(err))
		}
		return s
	}
	if !gjson.ValidBytes(data) {
		log.L.Warn("存储文件不是合法 JSON，使用空文档", zap.String("path", path))
		return s
	}
	s.doc = data
	return s
}

func (s *LocalStore) Save(ns string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	doc, err := sjson.SetRawBytes(s.doc, ns, raw)
	if err != nil {
		return err
	}
	s.doc = doc

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, s.doc, 0o644)
}

func (s *LocalStore) Load(ns string, out any) (bool, error) {
	r := gjson.GetBytes(s.doc, ns)
	if !r.Exists() {
		return false, nil
	}
	if err := json.Unmarshal([]byte(r.Raw), out); err != nil {
		return false, err
	}
	return true, nil
}
