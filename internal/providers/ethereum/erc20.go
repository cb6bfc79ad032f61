package ethereum

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-hotwallet/internal/domain"
)

const erc20ABIJSON = `[
	{"constant":true,"inputs":[],"name":"name","outputs":[{"name":"","type":"string"}],"type":"function"},
	{"constant":true,"inputs":[],"name":"symbol","outputs":[{"name":"","type":"string"}],"type":"function"},
	{"constant":true,"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"type":"function"},
	{"constant":true,"inputs":[],"name":"totalSupply","outputs":[{"name":"","type":"uint256"}],"type":"function"},
	{"constant":true,"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"type":"function"},
	{"constant":false,"inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],"name":"transfer","outputs":[{"name":"","type":"bool"}],"type":"function"}
]`

var (
	erc20ABI               abi.ABI
	erc20TransferSelector  []byte
	erc20TransferInputSize = 4 + 32 + 32
)

func init() {
	parsed, err := abi.JSON(strings.NewReader(erc20ABIJSON))
	if err != nil {
		panic(fmt.Sprintf("invalid erc20 abi: %v", err))
	}
	erc20ABI = parsed

	erc20TransferSelector, err = hex.DecodeString(domain.ERC20_TRANSFER_METHOD)
	if err != nil {
		panic(fmt.Sprintf("invalid erc20 transfer selector: %v", err))
	}
}

// decodeTransfer extracts the receiver and value of an ERC20 transfer call.
// ok is false when the input is not a transfer.
func decodeTransfer(input []byte) (receiver string, value *big.Int, ok bool) {
	if len(input) != erc20TransferInputSize || !bytes.Equal(input[:4], erc20TransferSelector) {
		return "", nil, false
	}

	args, err := erc20ABI.Methods["transfer"].Inputs.Unpack(input[4:])
	if err != nil || len(args) != 2 {
		return "", nil, false
	}

	to, okTo := args[0].(common.Address)
	amount, okValue := args[1].(*big.Int)
	if !okTo || !okValue {
		return "", nil, false
	}

	return strings.ToLower(to.Hex()), amount, true
}

// packTransfer encodes transfer(to, value)
func packTransfer(to string, value *big.Int) ([]byte, error) {
	return erc20ABI.Pack("transfer", common.HexToAddress(to), value)
}

// packBalanceOf encodes balanceOf(owner)
func packBalanceOf(owner string) ([]byte, error) {
	return erc20ABI.Pack("balanceOf", common.HexToAddress(owner))
}

// unpackUint256 decodes a single uint256 return value of method
func unpackUint256(method string, data []byte) (*big.Int, error) {
	if len(data) == 0 {
		return big.NewInt(0), nil
	}
	out, err := erc20ABI.Unpack(method, data)
	if err != nil {
		return nil, err
	}
	value, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected %s return type %T", method, out[0])
	}
	return value, nil
}
