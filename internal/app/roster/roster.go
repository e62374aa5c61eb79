package roster

// DefaultName labels the built-in roster.
const DefaultName = "default"

// Roster is a named list of player IDs to fetch in order.
type Roster struct {
	Name      string
	PlayerIDs []uint32
}

// DefaultRoster returns the built-in batch of player IDs.
func DefaultRoster() Roster {
	return Roster{
		Name: DefaultName,
		PlayerIDs: []uint32{
			400124, 400180, 425844, 434564, 435043, 435261, 435638, 444541, 444886, 446359,
			451506, 474029, 476127, 488722, 501660, 501785, 501922, 502083, 502154, 518963,
			519412, 534584, 534708, 534730, 543041, 543044, 543059, 543211, 543809, 543819,
			543936, 544253, 545346, 554430, 572227, 581662, 581683, 594943, 595025, 600350,
			605148, 605200, 605530, 605543, 607389, 608339, 621107, 621545, 623698, 623967,
			626925, 630242, 641470, 641558, 642066, 643299, 643327, 643335, 650638, 656643,
			657020, 657446, 661457, 661521, 656716, 661827, 663672, 663749, 664215, 664686,
			661841, 666923, 668676, 668678, 669174, 669342, 667493, 669733, 673863, 676422,
			676646, 676913, 670097, 685358, 689787,
		},
	}
}
