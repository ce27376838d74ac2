// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonclient json-rpc 客户端
package jsonclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
)

//JSONClient 以Guessbet 为方法前缀的json-rpc 客户端
type JSONClient struct {
	url    string
	prefix string
}

//NewJSONClient 创建指向addr 的客户端
func NewJSONClient(url string) (*JSONClient, error) {
	return New("Guessbet", url)
}

//New 创建指定方法前缀的客户端
func New(prefix, url string) (*JSONClient, error) {
	return &JSONClient{url: url, prefix: prefix}, nil
}

func (client *JSONClient) addPrefix(method string) string {
	return client.prefix + "." + method
}

type clientRequest struct {
	Method string         `json:"method"`
	Params [1]interface{} `json:"params"`
	ID     uint64         `json:"id"`
}

type clientResponse struct {
	ID     uint64           `json:"id"`
	Result *json.RawMessage `json:"result"`
	Error  interface{}      `json:"error"`
}

//Call 远程调用method，params 为入参，resp 为出参
func (client *JSONClient) Call(method string, params, resp interface{}) error {
	method = client.addPrefix(method)
	req := &clientRequest{Method: method, ID: uint64(1)}
	req.Params[0] = params
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	postresp, err := http.Post(client.url, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	defer func() {
		if err := postresp.Body.Close(); err != nil {
			fmt.Println("close response body", err)
		}
	}()
	body, err := ioutil.ReadAll(postresp.Body)
	if err != nil {
		return err
	}
	cresp := &clientResponse{}
	if err := json.Unmarshal(body, cresp); err != nil {
		return err
	}
	if cresp.Error != nil {
		x, ok := cresp.Error.(string)
		if !ok {
			return fmt.Errorf("invalid error %v", cresp.Error)
		}
		return fmt.Errorf(x)
	}
	if cresp.Result == nil {
		return fmt.Errorf("unexpected null result")
	}
	return json.Unmarshal(*cresp.Result, resp)
}
