package channel

import (
	"testing"
	"time"
)

func TestChannel_TrySend(t *testing.T) {
	t.Run("status transitions", func(t *testing.T) {
		ch, _ := New[int](1)
		if got := ch.TrySend(1); got != OK {
			t.Fatalf("TrySend(1) = %v, want %v", got, OK)
		}
		if got := ch.TrySend(2); got != Full {
			t.Fatalf("TrySend(2) on full buffer = %v, want %v", got, Full)
		}
		ch.Recv()
		if got := ch.TrySend(3); got != OK {
			t.Fatalf("TrySend(3) after Recv = %v, want %v", got, OK)
		}
		ch.Close()
		if got := ch.TrySend(4); got != Closed {
			t.Errorf("TrySend(4) after Close = %v, want %v", got, Closed)
		}
	})

	t.Run("closed wins over full", func(t *testing.T) {
		ch, _ := New[int](1)
		ch.Send(1)
		ch.Close()
		if got := ch.TrySend(2); got != Closed {
			t.Errorf("TrySend on closed full channel = %v, want %v", got, Closed)
		}
	})

	t.Run("wakes parked receiver", func(t *testing.T) {
		ch, _ := New[int](1)
		received := make(chan int)
		go func() {
			v, _ := ch.Recv()
			received <- v
		}()
		time.Sleep(50 * time.Millisecond)

		// The receiver holds no lock while parked, so TrySend succeeds
		// and its broadcast must release the receiver.
		if got := ch.TrySend(9); got != OK {
			t.Fatalf("TrySend(9) = %v, want %v", got, OK)
		}
		select {
		case v := <-received:
			if v != 9 {
				t.Errorf("Recv() = %d, want 9", v)
			}
		case <-time.After(time.Second):
			t.Fatal("parked Recv not released by TrySend")
		}
	})
}

func TestChannel_TryRecv(t *testing.T) {
	t.Run("status transitions", func(t *testing.T) {
		ch, _ := New[string](1)
		if _, got := ch.TryRecv(); got != Empty {
			t.Fatalf("TryRecv() on empty open channel = %v, want %v", got, Empty)
		}
		ch.Send("a")
		v, got := ch.TryRecv()
		if got != OK || v != "a" {
			t.Fatalf(`TryRecv() = %q, %v, want "a", %v`, v, got, OK)
		}
		ch.Close()
		if _, got := ch.TryRecv(); got != Closed {
			t.Errorf("TryRecv() on closed drained channel = %v, want %v", got, Closed)
		}
	})

	t.Run("drains backlog after close", func(t *testing.T) {
		ch, _ := New[int](2)
		ch.Send(1)
		ch.Send(2)
		ch.Close()

		// Close refuses new input but the poller keeps consuming.
		for want := 1; want <= 2; want++ {
			v, got := ch.TryRecv()
			if got != OK || v != want {
				t.Fatalf("TryRecv() = %d, %v, want %d, %v", v, got, want, OK)
			}
		}
		if _, got := ch.TryRecv(); got != Closed {
			t.Errorf("TryRecv() after drain = %v, want %v", got, Closed)
		}
	})

	t.Run("wakes parked sender", func(t *testing.T) {
		ch, _ := New[int](1)
		ch.Send(1)
		sent := make(chan struct{})
		go func() {
			ch.Send(2)
			close(sent)
		}()
		time.Sleep(50 * time.Millisecond)

		v, got := ch.TryRecv()
		if got != OK || v != 1 {
			t.Fatalf("TryRecv() = %d, %v, want 1, %v", v, got, OK)
		}
		select {
		case <-sent:
		case <-time.After(time.Second):
			t.Fatal("parked Send not released by TryRecv")
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status Status
		want   string
	}{
		{OK, "OK"},
		{Full, "Full"},
		{Empty, "Empty"},
		{Closed, "Closed"},
		{Status(99), "Unknown"},
	}
	for _, tc := range testCases {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("Status(%d).String() = %q, want %q", int(tc.status), got, tc.want)
		}
	}
}
