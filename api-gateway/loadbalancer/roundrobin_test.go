package loadbalancer

import "testing"

func TestRoundRobinRotation(t *testing.T) {
	rr := NewRoundRobin([]string{"http://a:8080", "http://b:8080", "http://c:8080"})

	want := []string{
		"http://a:8080", "http://b:8080", "http://c:8080",
		"http://a:8080", "http://b:8080",
	}
	for i, expected := range want {
		if got := rr.Next(); got != expected {
			t.Fatalf("call %d: got %s, want %s", i, got, expected)
		}
	}
}

func TestRoundRobinFallbackInstance(t *testing.T) {
	rr := NewRoundRobin(nil)

	if got := rr.Next(); got == "" {
		t.Fatal("expected fallback instance, got empty string")
	}
}

func TestRoundRobinAddRemove(t *testing.T) {
	rr := NewRoundRobin([]string{"http://a:8080"})

	rr.AddServer("http://b:8080")
	if got := len(rr.Servers()); got != 2 {
		t.Fatalf("expected 2 servers after add, got %d", got)
	}

	rr.Next()
	rr.Next()

	rr.RemoveServer("http://b:8080")
	servers := rr.Servers()
	if len(servers) != 1 || servers[0] != "http://a:8080" {
		t.Fatalf("unexpected pool after remove: %v", servers)
	}

	// Index must be valid after shrink
	if got := rr.Next(); got != "http://a:8080" {
		t.Fatalf("Next after remove = %s", got)
	}
}
