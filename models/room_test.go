package models

import "testing"

func TestDeriveRoomStatus(t *testing.T) {
	cases := []struct {
		name          string
		maintenance   bool
		occupiedToday bool
		want          string
	}{
		{"free room", false, false, RoomStatusAvailable},
		{"occupied room", false, true, RoomStatusOccupied},
		{"maintenance room", true, false, RoomStatusMaintenance},
		{"maintenance wins over occupancy", true, true, RoomStatusMaintenance},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveRoomStatus(tc.maintenance, tc.occupiedToday)
			if got != tc.want {
				t.Fatalf("DeriveRoomStatus(%v, %v) = %q, want %q", tc.maintenance, tc.occupiedToday, got, tc.want)
			}
		})
	}
}

func TestValidReservationStatus(t *testing.T) {
	for _, s := range []string{
		ReservationStatusConfirmed,
		ReservationStatusCheckedIn,
		ReservationStatusCheckedOut,
		ReservationStatusCancelled,
	} {
		if !ValidReservationStatus(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if ValidReservationStatus("teleported") {
		t.Fatal("expected unknown status to be invalid")
	}
}
