package cache

import (
	"errors"
	"testing"
	"time"
)

func TestParseConnectionStringEndpointForm(t *testing.T) {
	opts, err := ParseConnectionString("cache.internal:6380,password=s3cret,user=svc,defaultDatabase=2,connectTimeout=1500,syncTimeout=250,name=flex,abortConnect=false")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opts.Addr != "cache.internal:6380" {
		t.Fatalf("unexpected addr %q", opts.Addr)
	}
	if opts.Password != "s3cret" || opts.Username != "svc" {
		t.Fatalf("unexpected credentials %q/%q", opts.Username, opts.Password)
	}
	if opts.DB != 2 {
		t.Fatalf("unexpected db %d", opts.DB)
	}
	if opts.DialTimeout != 1500*time.Millisecond {
		t.Fatalf("unexpected dial timeout %v", opts.DialTimeout)
	}
	if opts.ReadTimeout != 250*time.Millisecond || opts.WriteTimeout != 250*time.Millisecond {
		t.Fatalf("unexpected io timeouts %v/%v", opts.ReadTimeout, opts.WriteTimeout)
	}
	if opts.ClientName != "flex" {
		t.Fatalf("unexpected client name %q", opts.ClientName)
	}
	if opts.TLSConfig != nil {
		t.Fatalf("expected no tls")
	}
}

func TestParseConnectionStringDefaultsPortAndTLS(t *testing.T) {
	opts, err := ParseConnectionString(" redis.example.com , ssl=True ")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opts.Addr != "redis.example.com:6379" {
		t.Fatalf("expected default port, got %q", opts.Addr)
	}
	if opts.TLSConfig == nil || opts.TLSConfig.ServerName != "redis.example.com" {
		t.Fatalf("expected tls with server name, got %+v", opts.TLSConfig)
	}
}

func TestParseConnectionStringFirstEndpointWins(t *testing.T) {
	opts, err := ParseConnectionString("primary:7000,replica:7001")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opts.Addr != "primary:7000" {
		t.Fatalf("expected first endpoint, got %q", opts.Addr)
	}
}

func TestParseConnectionStringIPv6(t *testing.T) {
	opts, err := ParseConnectionString("[::1]")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opts.Addr != "[::1]:6379" {
		t.Fatalf("unexpected addr %q", opts.Addr)
	}
}

func TestParseConnectionStringURLForm(t *testing.T) {
	opts, err := ParseConnectionString("redis://user:pw@localhost:6390/3")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opts.Addr != "localhost:6390" || opts.DB != 3 || opts.Username != "user" || opts.Password != "pw" {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestParseConnectionStringErrors(t *testing.T) {
	if _, err := ParseConnectionString("   "); !errors.Is(err, ErrEmptyConnectionString) {
		t.Fatalf("expected empty connection string error, got %v", err)
	}
	bad := []string{
		"password=only",
		"host:6379,bogus=1",
		"host:6379,ssl=maybe",
		"host:6379,defaultDatabase=-1",
		"host:6379,connectTimeout=soon",
		"host:6379,abortConnect=nah",
		"host:notaport",
		"host:",
		"::1",
		"redis://host:6379/notadb",
	}
	for _, s := range bad {
		if _, err := ParseConnectionString(s); err == nil {
			t.Fatalf("expected parse error for %q", s)
		}
	}
}
