package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Admins() AdminRepository
	Members() MemberRepository
	Trainers() TrainerRepository
	Marker() MarkerRepository
}
