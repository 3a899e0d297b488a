package model

import "testing"

func TestResultStates(t *testing.T) {
	ok := OkResult()
	if !ok.Succeeded() || ok.Forbidden {
		t.Fatalf("unexpected ok result: %+v", ok)
	}

	fail := FailResult("first", "second")
	if fail.Succeeded() {
		t.Fatal("result with errors must not report success")
	}
	if len(fail.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %v", fail.Errors)
	}

	forbidden := ForbiddenResult()
	if !forbidden.Forbidden {
		t.Fatal("expected forbidden flag")
	}
	if len(forbidden.Errors) != 0 {
		t.Fatalf("forbidden result must carry no errors, got %v", forbidden.Errors)
	}
}

func TestPayloadResult(t *testing.T) {
	p := OkPayload([]int{1, 2, 3})
	if !p.Succeeded() || len(p.Payload) != 3 {
		t.Fatalf("unexpected payload result: %+v", p)
	}

	f := FailPayload[[]int]("boom")
	if f.Succeeded() || f.Payload != nil {
		t.Fatalf("failed payload result must be empty: %+v", f)
	}

	fb := ForbiddenPayload[string]()
	if !fb.Forbidden || fb.Payload != "" {
		t.Fatalf("forbidden payload result must be empty: %+v", fb)
	}
}
