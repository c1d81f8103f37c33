package entity

// Kind tags what role an object plays in collisions.
type Kind int

const (
	KindAvatar Kind = iota
	KindEnemy
	KindFriendlyProjectile
	KindEnemyProjectile
	KindNeutral
)

func (k Kind) String() string {
	switch k {
	case KindAvatar:
		return "avatar"
	case KindEnemy:
		return "enemy"
	case KindFriendlyProjectile:
		return "friendly-projectile"
	case KindEnemyProjectile:
		return "enemy-projectile"
	case KindNeutral:
		return "neutral"
	}
	return "unknown"
}

// Dynamic reports whether objects of this kind are cleared on reset.
func (k Kind) Dynamic() bool {
	return k != KindNeutral
}
