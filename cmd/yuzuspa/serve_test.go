package main

import "testing"

func TestConnectHint(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "ssh localhost -p 23234"},
		{":2222", "ssh localhost -p 2222"},
		{"0.0.0.0:2200", "ssh localhost -p 2200"},
		{"spa.example.com:22", "ssh spa.example.com -p 22"},
		{"[::]:2022", "ssh localhost -p 2022"},
	}

	for _, tt := range tests {
		if got := connectHint(tt.addr); got != tt.want {
			t.Errorf("connectHint(%q) = %q, expected %q", tt.addr, got, tt.want)
		}
	}
}
