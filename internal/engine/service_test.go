package engine

import (
	"testing"
	"time"

	"gridworld/internal/domain"
	"gridworld/pkg/api"
	"gridworld/pkg/atlas"
)

func waitFrame(t *testing.T, ch chan api.Frame) api.Frame {
	t.Helper()
	select {
	case f := <-ch:
		return f
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for a frame")
		return api.Frame{}
	}
}

func TestService_FramesReachSubscribers(t *testing.T) {
	svc, err := NewService(NewConfig(), atlas.Default())
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}

	ch := svc.Hub.Register("viewer")
	svc.Start()

	// 1. The initial frame arrives without any input
	frame := waitFrame(t, ch)
	if frame.Type != "INIT" {
		t.Errorf("Expected INIT frame, got %s", frame.Type)
	}

	// 2. A submitted command produces an update
	svc.Submit(domain.InternalCommand{Action: domain.ActionStance})
	frame = waitFrame(t, ch)
	if frame.Type != "UPDATE" || frame.Turn != 1 {
		t.Errorf("Expected UPDATE for turn 1, got %s turn %d", frame.Type, frame.Turn)
	}

	// 3. Stop closes the source and the loop drains out
	svc.Stop()
	select {
	case <-svc.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Loop did not stop after Stop")
	}
}

func TestService_SubmitAfterStopIsDropped(t *testing.T) {
	svc, err := NewService(NewConfig(), atlas.Default())
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	svc.Start()

	// 1. Останавливаем сервис и ждем выхода цикла
	svc.Stop()
	select {
	case <-svc.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Loop did not stop after Stop")
	}

	// 2. Запоздавший ввод от клиента в окне остановки - молчаливый дроп,
	// а не паника на закрытом канале
	svc.Submit(domain.InternalCommand{Action: domain.ActionStance})
	svc.Submit(domain.InternalCommand{Action: domain.ActionQuit})

	// 3. Повторный Stop безопасен
	svc.Stop()
}

func TestService_QuitEndsLoop(t *testing.T) {
	svc, err := NewService(NewConfig(), atlas.Default())
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	svc.Start()

	svc.Submit(domain.InternalCommand{Action: domain.ActionQuit})
	select {
	case <-svc.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Loop did not stop after QUIT")
	}
}
