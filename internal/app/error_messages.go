// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the
// request pipeline, the service layer and the CLI.
//
// The backend and its users are Chinese-speaking, so messages that reach
// the user are kept in Chinese; log messages stay in English.
package app

const (
	// MsgRequestFailed is the result message when a failed call produced
	// no message of its own.
	MsgRequestFailed = "请求失败"

	// MsgNetworkUnreachable is the message of every transport failure. The
	// underlying error is logged, never shown.
	MsgNetworkUnreachable = "网络请求失败，可能是跨域或网络不可达（请检查后端地址是否可达，或后端是否允许来源）"

	// MsgRateLimited replaces any business message that reports rate
	// limiting.
	MsgRateLimited = "请求过于频繁，请稍后再试"

	// MsgBusinessErrorFormat formats a business failure that has no msg.
	// The verb receives the code.
	MsgBusinessErrorFormat = "业务错误 (code: %s)"

	// MsgHTTPStatusFormat formats an HTTP failure whose body carries no
	// message. The verb receives the status code.
	MsgHTTPStatusFormat = "HTTP %d"
)
