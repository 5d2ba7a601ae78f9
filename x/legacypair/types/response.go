package types

import (
	"encoding/json"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ReplyOn controls when the host delivers a reply for a sub-message
type ReplyOn string

const (
	ReplyOnSuccess ReplyOn = "success"
	ReplyOnError   ReplyOn = "error"
	ReplyOnAlways  ReplyOn = "always"
	ReplyNever     ReplyOn = "never"
)

// WasmExecute calls a method on another contract, optionally attaching funds
type WasmExecute struct {
	ContractAddr string          `json:"contract_addr"`
	Msg          json.RawMessage `json:"msg"`
	Funds        sdk.Coins       `json:"funds"`
}

// WasmInstantiate creates a new contract instance from a stored code id
type WasmInstantiate struct {
	Admin  string          `json:"admin,omitempty"`
	CodeID uint64          `json:"code_id"`
	Msg    json.RawMessage `json:"msg"`
	Funds  sdk.Coins       `json:"funds"`
	Label  string          `json:"label"`
}

// WasmMsg is the contract-targeting message union
type WasmMsg struct {
	Execute     *WasmExecute     `json:"execute,omitempty"`
	Instantiate *WasmInstantiate `json:"instantiate,omitempty"`
}

// BankSend transfers coins from the contract to an address
type BankSend struct {
	ToAddress string    `json:"to_address"`
	Amount    sdk.Coins `json:"amount"`
}

// BankMsg is the bank message union
type BankMsg struct {
	Send *BankSend `json:"send,omitempty"`
}

// CosmosMsg is a single effect emitted by the contract, dispatched by the
// host in list order with all-or-nothing semantics.
type CosmosMsg struct {
	Wasm *WasmMsg `json:"wasm,omitempty"`
	Bank *BankMsg `json:"bank,omitempty"`
}

// SubMsg wraps a CosmosMsg with reply correlation. ID is only meaningful when
// ReplyOn is not ReplyNever.
type SubMsg struct {
	ID       uint64    `json:"id"`
	Msg      CosmosMsg `json:"msg"`
	GasLimit *uint64   `json:"gas_limit,omitempty"`
	ReplyOn  ReplyOn   `json:"reply_on"`
}

// Attribute is a key/value pair attached to the response
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Response is the ordered effect list and metadata returned by an entry point
type Response struct {
	Messages   []SubMsg    `json:"messages"`
	Attributes []Attribute `json:"attributes"`
	Data       []byte      `json:"data,omitempty"`
}

// NewResponse returns an empty response
func NewResponse() *Response {
	return &Response{}
}

// AddMessage appends a fire-and-forget message
func (r *Response) AddMessage(msg CosmosMsg) *Response {
	r.Messages = append(r.Messages, SubMsg{Msg: msg, ReplyOn: ReplyNever})
	return r
}

// AddSubMsg appends a reply-correlated sub-message
func (r *Response) AddSubMsg(id uint64, msg CosmosMsg, replyOn ReplyOn) *Response {
	r.Messages = append(r.Messages, SubMsg{ID: id, Msg: msg, ReplyOn: replyOn})
	return r
}

// AddAttribute appends a response attribute
func (r *Response) AddAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: value})
	return r
}

// NewWasmExecuteMsg marshals msg and wraps it as a contract execute effect
func NewWasmExecuteMsg(contractAddr string, msg any, funds sdk.Coins) (CosmosMsg, error) {
	bz, err := json.Marshal(msg)
	if err != nil {
		return CosmosMsg{}, err
	}
	return CosmosMsg{Wasm: &WasmMsg{Execute: &WasmExecute{
		ContractAddr: contractAddr,
		Msg:          bz,
		Funds:        funds,
	}}}, nil
}

// NewBankSendMsg wraps a direct bank transfer effect
func NewBankSendMsg(toAddr string, amount sdk.Coins) CosmosMsg {
	return CosmosMsg{Bank: &BankMsg{Send: &BankSend{ToAddress: toAddr, Amount: amount}}}
}

// SubMsgResponse carries the success payload of a dispatched sub-message
type SubMsgResponse struct {
	Data []byte `json:"data,omitempty"`
}

// SubMsgResult is the outcome union of a dispatched sub-message
type SubMsgResult struct {
	Ok  *SubMsgResponse `json:"ok,omitempty"`
	Err string          `json:"error,omitempty"`
}

// Reply is delivered by the host for sub-messages that requested one
type Reply struct {
	ID     uint64       `json:"id"`
	Result SubMsgResult `json:"result"`
}

// InstantiateResponseData is the payload a contract instantiation sub-call
// reports back through the reply channel.
type InstantiateResponseData struct {
	ContractAddress string `json:"contract_address"`
}

// ParseInstantiateResponseData decodes a reply payload from a contract
// instantiation sub-call.
func ParseInstantiateResponseData(data []byte) (InstantiateResponseData, error) {
	var res InstantiateResponseData
	if err := json.Unmarshal(data, &res); err != nil {
		return res, sdkerrors.Wrapf(ErrFailedToParseReply, "instantiate response: %s", err)
	}
	if res.ContractAddress == "" {
		return res, sdkerrors.Wrap(ErrFailedToParseReply, "instantiate response missing contract address")
	}
	return res, nil
}

// MessageInfo identifies the external caller of an entry point together with
// the funds attached to the call.
type MessageInfo struct {
	Sender string    `json:"sender"`
	Funds  sdk.Coins `json:"funds"`
}
