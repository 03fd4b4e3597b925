package common

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"os"

	"github.com/pkg/errors"
)

// payload 服务端返回的 JSON 结构
type payload struct {
	Buf string `json:"buf"`
}

// GrabURL 从传感器服务端抓取 JSON 数据并解出采样缓冲区。
// dumpPath 非空时把抓到的 JSON 原样落盘，便于之后用 --json-in 离线重放。
func GrabURL(url, dumpPath string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, "get %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("get %s: %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read response from %s", url)
	}

	if dumpPath != "" {
		if err := os.WriteFile(dumpPath, body, 0644); err != nil {
			return nil, errors.Wrapf(err, "dump json to %s", dumpPath)
		}
	}

	return decodePayload(body)
}

// GrabFile 从本地快照文件读取同样结构的 JSON
func GrabFile(path string) ([]byte, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read json from %s", path)
	}
	return decodePayload(body)
}

func decodePayload(body []byte) ([]byte, error) {
	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, errors.Wrap(err, "parse json payload")
	}
	if p.Buf == "" {
		return nil, errors.New(`json payload has no "buf" field`)
	}

	// 服务端用 URL-safe 字母表编码，早期的快照文件是标准字母表，两种都收
	raw, err := base64.URLEncoding.DecodeString(p.Buf)
	if err == nil {
		return raw, nil
	}
	raw, err = base64.StdEncoding.DecodeString(p.Buf)
	if err != nil {
		return nil, errors.Wrap(err, `decode "buf" as base64`)
	}
	return raw, nil
}
